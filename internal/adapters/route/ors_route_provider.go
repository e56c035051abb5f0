package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/platform/obs"
)

// ORSRouteProvider implements RouteProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization and geocoding
//   - Directions requests with retry/backoff
//   - Normalization of the provider response into the domain segment model
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	country string
}

func NewORSRouteProvider(apiKey, country string) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if country == "" {
		country = "IN"
	}

	return &ORSRouteProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
		country: country,
	}, nil
}

// normalize ensures consistent geocode queries by collapsing whitespace.
func (o *ORSRouteProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Steps []struct {
					Distance  float64 `json:"distance"`
					Duration  float64 `json:"duration"`
					WayPoints []int   `json:"way_points"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute geocodes both endpoints and fetches a driving route, normalized
// into ordered domain segments. One segment per ORS step.
func (o *ORSRouteProvider) GetRoute(ctx context.Context, origin, destination string, departAt time.Time) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	if origin == "" || destination == "" {
		return nil, errors.New("get route: origin and destination must be non-empty")
	}

	originCoord, err := o.geocode(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("get route: geocode origin %q: %w", origin, err)
	}
	destCoord, err := o.geocode(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("get route: geocode destination %q: %w", destination, err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{originCoord.CoordsToList(), destCoord.CoordsToList()},
	})
	if err != nil {
		return nil, fmt.Errorf("get route: marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("get route: directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("get route: decode directions response: %w", err)
	}

	if len(dr.Features) == 0 {
		return nil, fmt.Errorf("get route: no route returned for %q -> %q", origin, destination)
	}

	feature := dr.Features[0]
	geometry := feature.Geometry.Coordinates

	segments := make([]domain.Segment, 0, 32)
	for _, orsSeg := range feature.Properties.Segments {
		for _, step := range orsSeg.Steps {
			if len(step.WayPoints) != 2 {
				return nil, fmt.Errorf("get route: step has %d way points, want 2", len(step.WayPoints))
			}
			start, err := geometryPoint(geometry, step.WayPoints[0])
			if err != nil {
				return nil, fmt.Errorf("get route: %w", err)
			}
			end, err := geometryPoint(geometry, step.WayPoints[1])
			if err != nil {
				return nil, fmt.Errorf("get route: %w", err)
			}

			// Zero-length connector steps carry no itinerary information.
			if step.Distance == 0 && step.Duration == 0 {
				continue
			}

			segments = append(segments, domain.Segment{
				DistanceMeters:  int(math.Round(step.Distance)),
				DurationSeconds: int(math.Round(step.Duration)),
				Start:           start,
				End:             end,
			})
		}
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("get route: route for %q -> %q has no segments", origin, destination)
	}

	return domain.NewRoute(origin, destination, segments), nil
}

func geometryPoint(geometry [][]float64, idx int) (domain.Coordinates, error) {
	if idx < 0 || idx >= len(geometry) {
		return domain.Coordinates{}, fmt.Errorf("way point index %d outside geometry of length %d", idx, len(geometry))
	}
	pt := geometry[idx]
	if len(pt) < 2 {
		return domain.Coordinates{}, fmt.Errorf("geometry point %d has %d ordinates, want 2", idx, len(pt))
	}
	return domain.Coordinates{Lon: pt[0], Lat: pt[1]}, nil
}

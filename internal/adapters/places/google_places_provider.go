package places

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/platform/obs"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/spatial"
)

// RegionCache is the persistence boundary for reverse-geocode results.
// Both the sqlite and postgres cache adapters satisfy it.
type RegionCache interface {
	Get(ctx context.Context, key string) (ports.RegionInfo, bool, error)
	Put(ctx context.Context, key string, info ports.RegionInfo) error
}

// GooglePlacesProvider implements PlacesProvider on the Google Places and
// Geocoding web services.
//
// It coordinates:
//   - Nearby search for stations, lodging, and restaurants
//   - Place-details enrichment for selected results
//   - Reverse geocoding with a persistent region cache
//
// The provider is safe for concurrent use.
type GooglePlacesProvider struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	regionCache RegionCache
}

// NewGooglePlacesProvider builds the provider. regionCache may be nil to
// disable reverse-geocode caching.
func NewGooglePlacesProvider(apiKey string, regionCache RegionCache) (*GooglePlacesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Google Maps api key is empty")
	}

	return &GooglePlacesProvider{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://maps.googleapis.com/maps/api",
		regionCache: regionCache,
	}, nil
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name         string `json:"name"`
		PlaceID      string `json:"place_id"`
		Rating       float64
		Vicinity     string `json:"vicinity"`
		OpeningHours struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		URL              string  `json:"url"`
		PlaceID          string  `json:"place_id"`
		Phone            string  `json:"formatted_phone_number"`
		Website          string  `json:"website"`
		OpeningHours     struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []addressComponent `json:"address_components"`
	} `json:"result"`
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []addressComponent `json:"address_components"`
	} `json:"results"`
}

// FindFuelStation locates the nearest plausible station to a point a given
// distance along the route, enriched with place details.
func (g *GooglePlacesProvider) FindFuelStation(ctx context.Context, q ports.StationQuery) (_ *domain.StationInfo, err error) {
	defer obs.Time(ctx, "places.FindFuelStation")(&err)

	if q.TotalRouteKm <= 0 {
		return nil, errors.New("find fuel station: total route distance must be positive")
	}

	at, ok := spatial.PointAtFraction(q.RoutePath, q.DistanceAlongRouteKm/q.TotalRouteKm)
	if !ok {
		return nil, errors.New("find fuel station: empty route path")
	}

	radius := q.RadiusMeters
	if radius == 0 {
		radius = 50000
	}

	var nr nearbyResponse
	params := url.Values{}
	params.Set("location", latLng(at))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "gas_station")
	params.Set("rankby", "prominence")
	if err := g.getJSON(ctx, g.baseURL+"/place/nearbysearch/json", params, &nr); err != nil {
		return nil, fmt.Errorf("find fuel station near %.1fkm: %w", q.DistanceAlongRouteKm, err)
	}
	if len(nr.Results) == 0 {
		return nil, fmt.Errorf("find fuel station near %.1fkm: %w", q.DistanceAlongRouteKm, ports.ErrNotFound)
	}

	top := nr.Results[0]

	var dr detailsResponse
	dparams := url.Values{}
	dparams.Set("place_id", top.PlaceID)
	dparams.Set("fields", "name,rating,opening_hours,formatted_address,geometry,place_id,address_components")
	if err := g.getJSON(ctx, g.baseURL+"/place/details/json", dparams, &dr); err != nil {
		return nil, fmt.Errorf("find fuel station: details for %q: %w", top.Name, err)
	}

	res := dr.Result
	return &domain.StationInfo{
		Name:    orDefault(res.Name, "Unknown Fuel Station"),
		Address: orDefault(res.FormattedAddress, "Address not available"),
		Rating:  res.Rating,
		IsOpen:  res.OpeningHours.OpenNow,
		MapsURL: fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", res.PlaceID),
		Location: domain.Coordinates{
			Lat: res.Geometry.Location.Lat,
			Lon: res.Geometry.Location.Lng,
		},
		State: componentOfType(res.AddressComponents, "administrative_area_level_1"),
	}, nil
}

// FindLodging returns nearby hotels filtered by rating and enriched with
// contact details, best rated first. Falls back to a keyword-only search
// when the lodging category returns nothing.
func (g *GooglePlacesProvider) FindLodging(ctx context.Context, at domain.Coordinates, radiusMeters int, minRating float64) (_ []domain.Lodging, err error) {
	defer obs.Time(ctx, "places.FindLodging")(&err)

	var nr nearbyResponse
	params := url.Values{}
	params.Set("location", latLng(at))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", "lodging")
	params.Set("keyword", "hotel")
	if err := g.getJSON(ctx, g.baseURL+"/place/nearbysearch/json", params, &nr); err != nil {
		return nil, fmt.Errorf("find lodging: %w", err)
	}

	if len(nr.Results) == 0 {
		params.Del("type")
		if err := g.getJSON(ctx, g.baseURL+"/place/nearbysearch/json", params, &nr); err != nil {
			return nil, fmt.Errorf("find lodging (keyword only): %w", err)
		}
	}

	out := make([]domain.Lodging, 0, len(nr.Results))
	for _, r := range nr.Results {
		if r.Rating < minRating {
			continue
		}

		lodging := domain.Lodging{
			Name:   r.Name,
			Rating: r.Rating,
			IsOpen: r.OpeningHours.OpenNow,
		}

		var dr detailsResponse
		dparams := url.Values{}
		dparams.Set("place_id", r.PlaceID)
		dparams.Set("fields", "name,formatted_address,rating,opening_hours,url,formatted_phone_number,website")
		if derr := g.getJSON(ctx, g.baseURL+"/place/details/json", dparams, &dr); derr != nil {
			// Details are enrichment only; keep the search-level fields.
			log.Printf("find lodging: details for %q failed: %v", r.Name, derr)
			lodging.Address = r.Vicinity
		} else {
			lodging.Name = orDefault(dr.Result.Name, r.Name)
			lodging.Address = orDefault(dr.Result.FormattedAddress, r.Vicinity)
			lodging.MapsURL = dr.Result.URL
			lodging.Phone = dr.Result.Phone
			lodging.Website = dr.Result.Website
		}

		out = append(out, lodging)
	}

	return out, nil
}

// FindRestaurants returns nearby dining options for one search strategy.
func (g *GooglePlacesProvider) FindRestaurants(ctx context.Context, at domain.Coordinates, radiusMeters int, placeType, keyword string) (_ []domain.Restaurant, err error) {
	defer obs.Time(ctx, "places.FindRestaurants")(&err)

	var nr nearbyResponse
	params := url.Values{}
	params.Set("location", latLng(at))
	params.Set("radius", strconv.Itoa(radiusMeters))
	if placeType != "" {
		params.Set("type", placeType)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	if err := g.getJSON(ctx, g.baseURL+"/place/nearbysearch/json", params, &nr); err != nil {
		return nil, fmt.Errorf("find restaurants: %w", err)
	}

	out := make([]domain.Restaurant, 0, len(nr.Results))
	for _, r := range nr.Results {
		out = append(out, domain.Restaurant{
			Name:    r.Name,
			Address: r.Vicinity,
			Rating:  r.Rating,
			IsOpen:  r.OpeningHours.OpenNow,
			MapsURL: fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", r.PlaceID),
			Location: domain.Coordinates{
				Lat: r.Geometry.Location.Lat,
				Lon: r.Geometry.Location.Lng,
			},
		})
	}

	return out, nil
}

// ReverseGeocode resolves the administrative region and locality of a
// coordinate, consulting the persistent cache first.
func (g *GooglePlacesProvider) ReverseGeocode(ctx context.Context, at domain.Coordinates) (_ ports.RegionInfo, err error) {
	defer obs.Time(ctx, "places.ReverseGeocode")(&err)

	key := at.Key()
	if g.regionCache != nil {
		info, ok, cerr := g.regionCache.Get(ctx, key)
		if cerr != nil {
			log.Printf("region cache read failed: %v", cerr)
		} else if ok {
			return info, nil
		}
	}

	var gr geocodeResponse
	params := url.Values{}
	params.Set("latlng", latLng(at))
	if err := g.getJSON(ctx, g.baseURL+"/geocode/json", params, &gr); err != nil {
		return ports.RegionInfo{}, fmt.Errorf("reverse geocode %s: %w", key, err)
	}
	if len(gr.Results) == 0 {
		return ports.RegionInfo{}, fmt.Errorf("reverse geocode %s: %w", key, ports.ErrNotFound)
	}

	components := gr.Results[0].AddressComponents
	info := ports.RegionInfo{
		State:    componentOfType(components, "administrative_area_level_1"),
		Locality: componentOfType(components, "administrative_area_level_2"),
	}
	if info.Locality == "" {
		info.Locality = componentOfType(components, "locality")
	}

	if g.regionCache != nil {
		if cerr := g.regionCache.Put(ctx, key, info); cerr != nil {
			log.Printf("region cache write failed: %v", cerr)
		}
	}

	return info, nil
}

func componentOfType(components []addressComponent, want string) string {
	for _, c := range components {
		for _, t := range c.Types {
			if t == want {
				return c.LongName
			}
		}
	}
	return ""
}

func latLng(c domain.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

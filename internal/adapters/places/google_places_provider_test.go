package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

type memRegionCache struct {
	m    map[string]ports.RegionInfo
	gets int
	puts int
}

func newMemRegionCache() *memRegionCache {
	return &memRegionCache{m: make(map[string]ports.RegionInfo)}
}

func (c *memRegionCache) Get(ctx context.Context, key string) (ports.RegionInfo, bool, error) {
	c.gets++
	info, ok := c.m[key]
	return info, ok, nil
}

func (c *memRegionCache) Put(ctx context.Context, key string, info ports.RegionInfo) error {
	c.puts++
	c.m[key] = info
	return nil
}

func TestGooglePlacesFindFuelStation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/place/nearbysearch/json":
			if r.URL.Query().Get("type") != "gas_station" {
				t.Fatalf("type = %q, want gas_station", r.URL.Query().Get("type"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"status": "OK",
				"results": []map[string]any{{
					"name":     "IOCL Behror",
					"place_id": "abc123",
					"vicinity": "NH48, Behror",
				}},
			})
		case "/place/details/json":
			if r.URL.Query().Get("place_id") != "abc123" {
				t.Fatalf("place_id = %q", r.URL.Query().Get("place_id"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"status": "OK",
				"result": map[string]any{
					"name":              "IOCL Behror",
					"formatted_address": "NH48, Behror, Rajasthan 301701, India",
					"rating":            4.1,
					"opening_hours":     map[string]any{"open_now": true},
					"geometry":          map[string]any{"location": map[string]any{"lat": 27.888, "lng": 76.281}},
					"address_components": []map[string]any{
						{"long_name": "Behror", "types": []string{"locality"}},
						{"long_name": "Rajasthan", "types": []string{"administrative_area_level_1"}},
					},
				},
			})
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	p, err := NewGooglePlacesProvider("test-key", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.baseURL = srv.URL

	station, err := p.FindFuelStation(context.Background(), ports.StationQuery{
		DistanceAlongRouteKm: 120,
		RoutePath: []domain.Coordinates{
			{Lat: 28.6, Lon: 77.2},
			{Lat: 27.9, Lon: 76.3},
			{Lat: 26.9, Lon: 75.8},
		},
		TotalRouteKm: 240,
		RadiusMeters: 50000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if station.Name != "IOCL Behror" {
		t.Fatalf("name = %q", station.Name)
	}
	if station.State != "Rajasthan" {
		t.Fatalf("state = %q, want Rajasthan", station.State)
	}
	if !station.IsOpen || station.Rating != 4.1 {
		t.Fatalf("unexpected station details: %+v", station)
	}
	if station.Location.Lat != 27.888 {
		t.Fatalf("location = %+v", station.Location)
	}
}

func TestGooglePlacesFindFuelStationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []any{}})
	}))
	defer srv.Close()

	p, _ := NewGooglePlacesProvider("test-key", nil)
	p.baseURL = srv.URL

	_, err := p.FindFuelStation(context.Background(), ports.StationQuery{
		DistanceAlongRouteKm: 50,
		RoutePath:            []domain.Coordinates{{Lat: 28.6, Lon: 77.2}},
		TotalRouteKm:         100,
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGooglePlacesReverseGeocodeUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/json" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []map[string]any{{
				"address_components": []map[string]any{
					{"long_name": "Rajasthan", "types": []string{"administrative_area_level_1"}},
					{"long_name": "Alwar", "types": []string{"administrative_area_level_2"}},
				},
			}},
		})
	}))
	defer srv.Close()

	memCache := newMemRegionCache()
	p, _ := NewGooglePlacesProvider("test-key", memCache)
	p.baseURL = srv.URL

	at := domain.Coordinates{Lat: 27.5530, Lon: 76.6346}

	first, err := p.ReverseGeocode(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.State != "Rajasthan" || first.Locality != "Alwar" {
		t.Fatalf("region = %+v", first)
	}

	second, err := p.ReverseGeocode(context.Background(), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Fatalf("cached region %+v differs from %+v", second, first)
	}

	if calls != 1 {
		t.Fatalf("backend calls = %d, want 1 (second lookup cached)", calls)
	}
	if memCache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", memCache.puts)
	}
}

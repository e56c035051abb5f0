package places

import (
	"context"
	"sync"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

// MockPlacesProvider serves canned lookup results. Zero-value fields make
// every lookup fail with ErrNotFound (stations) or return nothing, which
// lets tests exercise the degradation paths without a live backend.
type MockPlacesProvider struct {
	mu sync.Mutex

	// Stations are consumed in order, one per FindFuelStation call.
	Stations []*domain.StationInfo
	// StationErr, when set, fails every station lookup.
	StationErr error

	Hotels      []domain.Lodging
	Restaurants []domain.Restaurant
	Region      ports.RegionInfo
	RegionErr   error

	StationCalls    int
	GeocodeCalls    int
	RestaurantCalls int
}

func NewMockPlacesProvider() *MockPlacesProvider {
	return &MockPlacesProvider{}
}

func (p *MockPlacesProvider) FindFuelStation(ctx context.Context, q ports.StationQuery) (*domain.StationInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.StationCalls++
	if p.StationErr != nil {
		return nil, p.StationErr
	}
	if len(p.Stations) == 0 {
		return nil, ports.ErrNotFound
	}
	s := p.Stations[0]
	p.Stations = p.Stations[1:]
	return s, nil
}

func (p *MockPlacesProvider) FindLodging(ctx context.Context, at domain.Coordinates, radiusMeters int, minRating float64) ([]domain.Lodging, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.Lodging, 0, len(p.Hotels))
	for _, h := range p.Hotels {
		if h.Rating >= minRating {
			out = append(out, h)
		}
	}
	return out, nil
}

func (p *MockPlacesProvider) FindRestaurants(ctx context.Context, at domain.Coordinates, radiusMeters int, placeType, keyword string) ([]domain.Restaurant, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.RestaurantCalls++
	return append([]domain.Restaurant(nil), p.Restaurants...), nil
}

func (p *MockPlacesProvider) ReverseGeocode(ctx context.Context, at domain.Coordinates) (ports.RegionInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.GeocodeCalls++
	if p.RegionErr != nil {
		return ports.RegionInfo{}, p.RegionErr
	}
	return p.Region, nil
}

package route

import (
	"context"
	"fmt"
	"time"

	"roadtrip-planner-service/internal/domain"
)

// MockRouteProvider returns canned routes keyed by "origin|destination".
type MockRouteProvider struct {
	m map[string]*domain.Route
}

func NewMockRouteProvider() *MockRouteProvider {
	return &MockRouteProvider{m: make(map[string]*domain.Route)}
}

func (p *MockRouteProvider) Add(origin, destination string, segments []domain.Segment) {
	p.m[origin+"|"+destination] = domain.NewRoute(origin, destination, segments)
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, origin, destination string, departAt time.Time) (*domain.Route, error) {
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return nil, fmt.Errorf("missing route %q -> %q", origin, destination)
	}
	return r, nil
}

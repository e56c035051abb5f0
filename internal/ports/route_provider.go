package ports

import (
	"context"
	"time"

	"roadtrip-planner-service/internal/domain"
)

// Contract for retrieving a drivable route between two addresses.
// Failure here is fatal to planning; there is no fallback route source.
type RouteProvider interface {
	// Return the route as an ordered segment sequence.
	GetRoute(ctx context.Context, origin, destination string, departAt time.Time) (*domain.Route, error)
}

package ports

import (
	"context"

	"roadtrip-planner-service/internal/domain"
)

// Contract for exact per-booth toll costs between two addresses.
// Provider failure is recoverable; the estimator substitutes a heuristic.
type TollProvider interface {
	GetTollCost(ctx context.Context, origin, destination string, vehicle domain.VehicleType) (*domain.TollResult, error)
}

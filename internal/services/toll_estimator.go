package services

import (
	"context"
	"log"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

// Heuristic per-km toll rates (INR) blended by assumed road-type mix:
// 40% highway, 20% expressway, 40% other roads.
const (
	tollRateHighwayPerKm    = 3.0
	tollRateExpresswayPerKm = 4.0
	tollRateDefaultPerKm    = 2.5

	tollShareHighway    = 0.4
	tollShareExpressway = 0.2
	tollShareDefault    = 0.4
)

// TollEstimator produces the toll component of the trip cost. It prefers
// exact per-booth costs from the provider and degrades to a distance-based
// heuristic on any provider failure; planning never aborts on tolls.
type TollEstimator struct {
	// Provider may be nil when no toll backend is configured.
	Provider ports.TollProvider
}

// Estimate returns a uniform result for both paths; IsEstimate marks the
// heuristic one. Never returns an error.
func (e *TollEstimator) Estimate(ctx context.Context, origin, destination string, vehicle domain.VehicleType, totalDistanceKm float64) domain.TollResult {
	if e.Provider != nil {
		res, err := e.Provider.GetTollCost(ctx, origin, destination, vehicle)
		if err == nil && res != nil {
			res.VehicleType = vehicle
			return *res
		}
		log.Printf("toll estimate: provider failed for %q -> %q, using heuristic: %v", origin, destination, err)
	}

	return heuristicToll(vehicle, totalDistanceKm)
}

func heuristicToll(vehicle domain.VehicleType, totalDistanceKm float64) domain.TollResult {
	if vehicle.TollExempt() {
		return domain.TollResult{IsEstimate: true, VehicleType: vehicle}
	}

	blendedRate := tollRateHighwayPerKm*tollShareHighway +
		tollRateExpresswayPerKm*tollShareExpressway +
		tollRateDefaultPerKm*tollShareDefault

	return domain.TollResult{
		TotalCost:   totalDistanceKm * blendedRate,
		IsEstimate:  true,
		VehicleType: vehicle,
	}
}

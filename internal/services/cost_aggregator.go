package services

import "roadtrip-planner-service/internal/domain"

// AggregateCost sums fuel stop costs and the toll total into the trip cost,
// carrying forward the estimate flags of the inputs so downstream consumers
// can indicate uncertainty.
func AggregateCost(fuelStops []domain.FuelStop, toll domain.TollResult) domain.TripCost {
	cost := domain.TripCost{
		TollCost:       toll.TotalCost,
		TollIsEstimate: toll.IsEstimate,
	}

	for _, s := range fuelStops {
		cost.FuelCost += s.SegmentCost
		cost.FuelLitersAdded += s.LitersAdded
		if s.PriceIsEstimate {
			cost.FuelIsEstimate = true
		}
	}

	if cost.FuelLitersAdded > 0 {
		cost.AvgPricePerLiter = cost.FuelCost / cost.FuelLitersAdded
	}

	cost.Total = cost.FuelCost + cost.TollCost
	return cost
}

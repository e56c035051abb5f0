package domain

import "time"

// TripCost aggregates projected fuel and toll spend for the whole trip.
type TripCost struct {
	FuelCost         float64
	TollCost         float64
	Total            float64
	FuelLitersAdded  float64
	AvgPricePerLiter float64
	FuelIsEstimate   bool
	TollIsEstimate   bool
}

// Itinerary is the aggregate root of one plan request. It exclusively owns
// its event lists; it is built once and never mutated after construction.
type Itinerary struct {
	Route     *Route
	Vehicle   Vehicle
	DepartAt  time.Time
	FuelStops []FuelStop
	RestStops []RestStop
	MealStops []MealStop
	Toll      TollResult
	Cost      TripCost
	// TotalWithRests is the full trip duration including overnight rests.
	TotalWithRests time.Duration
}

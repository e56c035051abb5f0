package ports

import "context"

// FuelPrices is one region's pump prices per fuel type. IsEstimate marks
// values substituted from the static fallback table.
type FuelPrices struct {
	PetrolPerLiter float64
	DieselPerLiter float64
	Source         string
	IsEstimate     bool
}

// PerLiter returns the price for a fuel type name ("petrol"/"diesel").
func (p FuelPrices) PerLiter(fuelType string) float64 {
	if fuelType == "diesel" {
		return p.DieselPerLiter
	}
	return p.PetrolPerLiter
}

// Contract for regional fuel price lookup, keyed by state or city name.
type FuelPriceProvider interface {
	GetFuelPrices(ctx context.Context, region string) (FuelPrices, error)
}

package fuelprice

import (
	"context"

	"roadtrip-planner-service/internal/ports"
)

// MockPriceProvider returns canned prices per region, or Err when set.
type MockPriceProvider struct {
	Prices map[string]ports.FuelPrices
	Err    error
	Calls  int
}

func NewMockPriceProvider() *MockPriceProvider {
	return &MockPriceProvider{Prices: make(map[string]ports.FuelPrices)}
}

func (p *MockPriceProvider) GetFuelPrices(ctx context.Context, region string) (ports.FuelPrices, error) {
	p.Calls++
	if p.Err != nil {
		return ports.FuelPrices{}, p.Err
	}
	if prices, ok := p.Prices[region]; ok {
		return prices, nil
	}
	return ports.FuelPrices{
		PetrolPerLiter: 100,
		DieselPerLiter: 90,
		Source:         "Mock Prices",
	}, nil
}

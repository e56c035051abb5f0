package fuelprice

import (
	"context"
	"errors"
	"log"

	"roadtrip-planner-service/internal/ports"
)

// PriceService chains a live price source with the static fallback table.
// Remote may be nil, in which case every lookup is served from the
// fallback and marked as an estimate.
type PriceService struct {
	Remote   ports.FuelPriceProvider
	Fallback ports.FuelPriceProvider
}

func NewPriceService(remote, fallback ports.FuelPriceProvider) (*PriceService, error) {
	if fallback == nil {
		return nil, errors.New("price service: fallback provider is required")
	}
	return &PriceService{Remote: remote, Fallback: fallback}, nil
}

func (s *PriceService) GetFuelPrices(ctx context.Context, region string) (ports.FuelPrices, error) {
	if s.Remote != nil {
		prices, err := s.Remote.GetFuelPrices(ctx, region)
		if err == nil {
			return prices, nil
		}
		log.Printf("live fuel prices for %q unavailable, using fallback: %v", region, err)
	}

	return s.Fallback.GetFuelPrices(ctx, region)
}

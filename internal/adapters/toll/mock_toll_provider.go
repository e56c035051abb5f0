package toll

import (
	"context"

	"roadtrip-planner-service/internal/domain"
)

// MockTollProvider returns a canned result, or Err when set.
type MockTollProvider struct {
	Result *domain.TollResult
	Err    error
	Calls  int
}

func (p *MockTollProvider) GetTollCost(ctx context.Context, origin, destination string, vehicle domain.VehicleType) (*domain.TollResult, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	res := *p.Result
	res.VehicleType = vehicle
	return &res, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

// ErrRouteUnavailable is the only planning failure that propagates to the
// caller as a hard error; everything else degrades data quality instead.
var ErrRouteUnavailable = errors.New("route unavailable")

// PlanRequest carries one trip planning request into the engine.
type PlanRequest struct {
	Origin      string
	Destination string
	DepartAt    time.Time
	// Daily clock-time range within which driving is permitted.
	WindowStart domain.TimeOfDay
	WindowEnd   domain.TimeOfDay
	Meals       MealTargets
	Vehicle     domain.Vehicle
}

func (r PlanRequest) validate() error {
	if strings.TrimSpace(r.Origin) == "" {
		return errors.New("plan trip: origin must be non-empty")
	}
	if strings.TrimSpace(r.Destination) == "" {
		return errors.New("plan trip: destination must be non-empty")
	}
	if r.DepartAt.IsZero() {
		return errors.New("plan trip: departure time is required")
	}
	if !r.WindowStart.Before(r.WindowEnd) {
		return fmt.Errorf("plan trip: driving window start %s must precede end %s", r.WindowStart, r.WindowEnd)
	}
	if err := r.Vehicle.Validate(); err != nil {
		return fmt.Errorf("plan trip: %w", err)
	}
	return nil
}

// Planner orchestrates the itinerary simulation engine over one route.
//
// The fuel and time walks read the same immutable segment sequence and own
// their simulation state, so they run concurrently along with the toll
// lookup; the meal scheduler runs after the time walk because suppression
// needs the rest calendar.
type Planner struct {
	Routes ports.RouteProvider
	Places ports.PlacesProvider
	Prices ports.FuelPriceProvider
	Tolls  ports.TollProvider

	// LowFuelFraction defaults to DefaultLowFuelFraction when zero.
	LowFuelFraction float64
}

// PlanTrip computes a complete itinerary synchronously. Given identical
// inputs and identical collaborator responses, the result is deterministic.
func (p *Planner) PlanTrip(ctx context.Context, req PlanRequest) (*domain.Itinerary, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	route, err := p.Routes.GetRoute(ctx, req.Origin, req.Destination, req.DepartAt)
	if err != nil {
		return nil, fmt.Errorf("plan trip %q -> %q: %w: %v", req.Origin, req.Destination, ErrRouteUnavailable, err)
	}
	if route == nil || len(route.Segments) == 0 {
		return nil, fmt.Errorf("plan trip %q -> %q: %w: provider returned no segments", req.Origin, req.Destination, ErrRouteUnavailable)
	}

	fuelSim := &FuelSimulator{Places: p.Places, Prices: p.Prices, LowFuelFraction: p.LowFuelFraction}
	timeSim := &TimeSimulator{Places: p.Places}
	mealSched := &MealScheduler{Places: p.Places}
	tollEst := &TollEstimator{Provider: p.Tolls}

	var (
		fuelStops []domain.FuelStop
		restStops []domain.RestStop
		toll      domain.TollResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fuelStops, err = fuelSim.Simulate(gctx, route, req.Vehicle)
		return err
	})
	g.Go(func() error {
		var err error
		restStops, err = timeSim.Simulate(gctx, route, req.DepartAt, req.WindowStart, req.WindowEnd)
		return err
	})
	g.Go(func() error {
		toll = tollEst.Estimate(gctx, req.Origin, req.Destination, req.Vehicle.Type, float64(route.TotalDistanceMeters)/1000)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan trip %q -> %q: %w", req.Origin, req.Destination, err)
	}

	mealStops, err := mealSched.Schedule(ctx, route, req.DepartAt, req.Meals, restStops)
	if err != nil {
		return nil, fmt.Errorf("plan trip %q -> %q: %w", req.Origin, req.Destination, err)
	}

	totalWithRests := time.Duration(route.TotalDurationSeconds) * time.Second
	if n := len(restStops); n > 0 {
		totalWithRests = restStops[n-1].TotalWithRests
	}

	return &domain.Itinerary{
		Route:          route,
		Vehicle:        req.Vehicle,
		DepartAt:       req.DepartAt,
		FuelStops:      fuelStops,
		RestStops:      restStops,
		MealStops:      mealStops,
		Toll:           toll,
		Cost:           AggregateCost(fuelStops, toll),
		TotalWithRests: totalWithRests,
	}, nil
}

package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"roadtrip-planner-service/internal/adapters/fuelprice"
	"roadtrip-planner-service/internal/adapters/places"
	"roadtrip-planner-service/internal/adapters/route"
	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

func testPlanRequest() PlanRequest {
	return PlanRequest{
		Origin:      "Delhi",
		Destination: "Jaipur",
		DepartAt:    time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC),
		WindowStart: domain.TimeOfDay{Hour: 6},
		WindowEnd:   domain.TimeOfDay{Hour: 19},
		Meals: MealTargets{
			Breakfast: domain.TimeOfDay{Hour: 8},
			Lunch:     domain.TimeOfDay{Hour: 13},
			Dinner:    domain.TimeOfDay{Hour: 20},
		},
		Vehicle: testVehicle(15, 40),
	}
}

func newTestPlanner() *Planner {
	routes := route.NewMockRouteProvider()
	routes.Add("Delhi", "Jaipur", uniformRoute(10, 100).Segments)

	mockPlaces := places.NewMockPlacesProvider()
	mockPlaces.Region = ports.RegionInfo{State: "rajasthan", Locality: "Ajmer"}
	mockPlaces.Stations = []*domain.StationInfo{
		station("Midway Pump", "rajasthan"),
		station("Dest Pump", "rajasthan"),
	}

	return &Planner{
		Routes: routes,
		Places: mockPlaces,
		Prices: fuelprice.NewMockPriceProvider(),
	}
}

func TestPlanTripEndToEnd(t *testing.T) {
	planner := newTestPlanner()

	it, err := planner.PlanTrip(context.Background(), testPlanRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if it.Route.TotalDistanceMeters != 1000000 {
		t.Fatalf("route distance = %d, want 1000000", it.Route.TotalDistanceMeters)
	}

	// One intermediate refuel plus the mandatory destination fill.
	if len(it.FuelStops) != 2 {
		t.Fatalf("fuel stops = %d, want 2", len(it.FuelStops))
	}
	if !it.FuelStops[len(it.FuelStops)-1].IsDestinationFill {
		t.Fatalf("last fuel stop must be the destination fill")
	}

	// 10 hours fits inside one driving day: only the terminal arrival.
	if len(it.RestStops) != 1 || !it.RestStops[0].IsFinalDestination {
		t.Fatalf("unexpected rest calendar: %+v", it.RestStops)
	}
	if it.TotalWithRests != 10*time.Hour {
		t.Fatalf("total with rests = %v, want 10h", it.TotalWithRests)
	}

	// Breakfast and lunch land on the road; dinner falls after arrival.
	if len(it.MealStops) != 2 {
		t.Fatalf("meal stops = %d, want 2", len(it.MealStops))
	}

	// No toll provider configured, so the heuristic prices 1000km.
	if !it.Toll.IsEstimate {
		t.Fatalf("toll must be an estimate without a provider")
	}
	if it.Toll.TotalCost != 3000 {
		t.Fatalf("toll cost = %v, want 3000", it.Toll.TotalCost)
	}

	if it.Cost.Total != it.Cost.FuelCost+it.Cost.TollCost {
		t.Fatalf("cost total %v != fuel %v + toll %v", it.Cost.Total, it.Cost.FuelCost, it.Cost.TollCost)
	}
	if it.Cost.FuelCost <= 0 {
		t.Fatalf("fuel cost = %v, want > 0", it.Cost.FuelCost)
	}
}

func TestPlanTripDeterministic(t *testing.T) {
	first, err := newTestPlanner().PlanTrip(context.Background(), testPlanRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestPlanner().PlanTrip(context.Background(), testPlanRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different itineraries")
	}
}

func TestPlanTripRouteUnavailable(t *testing.T) {
	planner := newTestPlanner()

	req := testPlanRequest()
	req.Destination = "Mumbai"

	_, err := planner.PlanTrip(context.Background(), req)
	if !errors.Is(err, ErrRouteUnavailable) {
		t.Fatalf("expected ErrRouteUnavailable, got %v", err)
	}
}

func TestPlanTripValidation(t *testing.T) {
	planner := newTestPlanner()

	req := testPlanRequest()
	req.Origin = "  "
	if _, err := planner.PlanTrip(context.Background(), req); err == nil {
		t.Fatalf("expected error for blank origin")
	}

	req = testPlanRequest()
	req.WindowStart = domain.TimeOfDay{Hour: 19}
	req.WindowEnd = domain.TimeOfDay{Hour: 6}
	if _, err := planner.PlanTrip(context.Background(), req); err == nil {
		t.Fatalf("expected error for inverted window")
	}

	req = testPlanRequest()
	req.Vehicle.MileageKmPerLiter = 0
	if _, err := planner.PlanTrip(context.Background(), req); err == nil {
		t.Fatalf("expected error for invalid vehicle")
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roadtrip-planner-service/internal/adapters/fuelprice"
	"roadtrip-planner-service/internal/adapters/places"
	"roadtrip-planner-service/internal/adapters/route"
	"roadtrip-planner-service/internal/api/dto"
	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/services"
)

func newTestHandler() *PlanHandler {
	routes := route.NewMockRouteProvider()

	segments := make([]domain.Segment, 0, 10)
	for i := 0; i < 10; i++ {
		segments = append(segments, domain.Segment{
			DistanceMeters:  100000,
			DurationSeconds: 3600,
			Start:           domain.Coordinates{Lat: 28.0 + float64(i)*0.1, Lon: 77.0},
			End:             domain.Coordinates{Lat: 28.0 + float64(i+1)*0.1, Lon: 77.0},
		})
	}
	routes.Add("Delhi", "Jaipur", segments)

	mockPlaces := places.NewMockPlacesProvider()
	mockPlaces.Region = ports.RegionInfo{State: "rajasthan", Locality: "Ajmer"}

	planner := &services.Planner{
		Routes: routes,
		Places: mockPlaces,
		Prices: fuelprice.NewMockPriceProvider(),
	}
	return &PlanHandler{Planner: planner}
}

func TestPlanHandlerSuccess(t *testing.T) {
	h := newTestHandler()

	body := `{
		"origin": "Delhi",
		"destination": "Jaipur",
		"depart_at": "2026-01-01T06:00:00Z",
		"vehicle": {"type": "Car", "fuel": "petrol", "mileage_kmpl": 15, "tank_capacity_liters": 40}
	}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Plan(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TotalDistanceMeters != 1000000 {
		t.Fatalf("distance = %d, want 1000000", res.TotalDistanceMeters)
	}
	if len(res.FuelStops) == 0 || !res.FuelStops[len(res.FuelStops)-1].IsDestinationFill {
		t.Fatalf("missing destination fill in %+v", res.FuelStops)
	}
	if len(res.RestStops) != 1 || !res.RestStops[0].IsFinalDestination {
		t.Fatalf("unexpected rest stops: %+v", res.RestStops)
	}
	if !res.Toll.IsEstimate {
		t.Fatalf("toll should be estimated without a provider")
	}
	// Defaults: 06:00-19:00 window, meals at 08:00/13:00/20:00.
	if len(res.MealStops) != 2 {
		t.Fatalf("meal stops = %d, want 2 with default targets", len(res.MealStops))
	}
}

func TestPlanHandlerRejectsBadRequests(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	w := httptest.NewRecorder()
	h.Plan(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d, want 405", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader("{not json"))
	w = httptest.NewRecorder()
	h.Plan(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad JSON status = %d, want 400", w.Code)
	}

	body := `{"origin": "", "destination": "Jaipur", "vehicle": {"type": "Car", "fuel": "petrol", "mileage_kmpl": 15, "tank_capacity_liters": 40}}`
	req = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	w = httptest.NewRecorder()
	h.Plan(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("blank origin status = %d, want 400", w.Code)
	}

	body = `{"origin": "Delhi", "destination": "Jaipur", "window_start": "midnight", "vehicle": {"type": "Car", "fuel": "petrol", "mileage_kmpl": 15, "tank_capacity_liters": 40}}`
	req = httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	w = httptest.NewRecorder()
	h.Plan(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad window status = %d, want 400", w.Code)
	}
}

func TestPlanHandlerRouteUnavailable(t *testing.T) {
	h := newTestHandler()

	body := `{"origin": "Delhi", "destination": "Mumbai", "vehicle": {"type": "Car", "fuel": "petrol", "mileage_kmpl": 15, "tank_capacity_liters": 40}}`
	req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Plan(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

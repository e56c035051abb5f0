package services

import (
	"context"
	"testing"
	"time"

	"roadtrip-planner-service/internal/adapters/places"
	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

func TestTimeSimulatorOvernightRestAndTerminalArrival(t *testing.T) {
	// 20 hours of driving, 13-hour daily window: one overnight rest at the
	// window end, then the terminal arrival on day two.
	route := uniformRoute(20, 100)
	depart := time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)
	windowStart := domain.TimeOfDay{Hour: 6}
	windowEnd := domain.TimeOfDay{Hour: 19}

	mock := places.NewMockPlacesProvider()
	mock.Region = ports.RegionInfo{State: "rajasthan", Locality: "Ajmer"}

	sim := &TimeSimulator{Places: mock}
	rests, err := sim.Simulate(context.Background(), route, depart, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rests) != 2 {
		t.Fatalf("expected 2 rest events, got %d", len(rests))
	}

	overnight := rests[0]
	if overnight.IsFinalDestination {
		t.Fatalf("first event should be an overnight rest")
	}
	wantArrival := time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC)
	if !overnight.ArrivalAt.Equal(wantArrival) {
		t.Fatalf("arrival = %v, want %v", overnight.ArrivalAt, wantArrival)
	}
	if overnight.ResumeAt == nil || overnight.RestDuration == nil {
		t.Fatalf("overnight rest must carry resume fields")
	}
	wantResume := time.Date(2026, 1, 2, 6, 0, 0, 0, time.UTC)
	if !overnight.ResumeAt.Equal(wantResume) {
		t.Fatalf("resume = %v, want %v", overnight.ResumeAt, wantResume)
	}
	if *overnight.RestDuration != 11*time.Hour {
		t.Fatalf("rest duration = %v, want 11h", *overnight.RestDuration)
	}
	if overnight.CumulativeDistanceMeters != 1300000 {
		t.Fatalf("rest at %dm, want 1300000", overnight.CumulativeDistanceMeters)
	}
	if overnight.Locality != "Ajmer" {
		t.Fatalf("locality = %q, want Ajmer", overnight.Locality)
	}

	terminal := rests[1]
	if !terminal.IsFinalDestination {
		t.Fatalf("last event must be the terminal arrival")
	}
	if terminal.ResumeAt != nil || terminal.RestDuration != nil {
		t.Fatalf("terminal arrival must not carry resume fields")
	}
	wantTerminal := time.Date(2026, 1, 2, 13, 0, 0, 0, time.UTC)
	if !terminal.ArrivalAt.Equal(wantTerminal) {
		t.Fatalf("terminal arrival = %v, want %v", terminal.ArrivalAt, wantTerminal)
	}
	if terminal.TotalWithRests != 31*time.Hour {
		t.Fatalf("total with rests = %v, want 31h", terminal.TotalWithRests)
	}
}

func TestTimeSimulatorShortTripTerminalOnly(t *testing.T) {
	route := uniformRoute(5, 100)
	depart := time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)

	sim := &TimeSimulator{Places: places.NewMockPlacesProvider()}
	rests, err := sim.Simulate(context.Background(), route, depart,
		domain.TimeOfDay{Hour: 6}, domain.TimeOfDay{Hour: 19})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rests) != 1 {
		t.Fatalf("expected only the terminal arrival, got %d events", len(rests))
	}
	if !rests[0].IsFinalDestination {
		t.Fatalf("single event must be the terminal arrival")
	}
	if rests[0].TotalWithRests != 5*time.Hour {
		t.Fatalf("total with rests = %v, want 5h", rests[0].TotalWithRests)
	}
}

func TestTimeSimulatorLodgingSortedAndCapped(t *testing.T) {
	route := uniformRoute(20, 100)
	depart := time.Date(2026, 1, 1, 6, 0, 0, 0, time.UTC)

	mock := places.NewMockPlacesProvider()
	mock.Region = ports.RegionInfo{Locality: "Kota"}
	mock.Hotels = []domain.Lodging{
		{Name: "Budget Inn", Rating: 3.6},
		{Name: "Grand Palace", Rating: 4.8},
		{Name: "Roadside Lodge", Rating: 3.2},
		{Name: "Comfort Stay", Rating: 4.1},
		{Name: "City Hotel", Rating: 4.5},
	}

	sim := &TimeSimulator{Places: mock}
	rests, err := sim.Simulate(context.Background(), route, depart,
		domain.TimeOfDay{Hour: 6}, domain.TimeOfDay{Hour: 19})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hotels := rests[0].Hotels
	if len(hotels) != 3 {
		t.Fatalf("expected 3 lodging options, got %d", len(hotels))
	}
	// Rating 3.2 is below the minimum and must not appear even though the
	// cap leaves room for it.
	want := []string{"Grand Palace", "City Hotel", "Comfort Stay"}
	for i, name := range want {
		if hotels[i].Name != name {
			t.Fatalf("hotel %d = %q, want %q", i, hotels[i].Name, name)
		}
	}
}

func TestTimeSimulatorRejectsInvertedWindow(t *testing.T) {
	route := uniformRoute(5, 100)
	sim := &TimeSimulator{Places: places.NewMockPlacesProvider()}

	_, err := sim.Simulate(context.Background(), route, time.Now(),
		domain.TimeOfDay{Hour: 19}, domain.TimeOfDay{Hour: 6})
	if err == nil {
		t.Fatalf("expected error for inverted driving window")
	}
}

package spatial

import (
	"math"
	"testing"

	"roadtrip-planner-service/internal/domain"
)

func TestHaversineMeters(t *testing.T) {
	delhi := domain.Coordinates{Lat: 28.6139, Lon: 77.2090}
	jaipur := domain.Coordinates{Lat: 26.9124, Lon: 75.7873}

	got := HaversineMeters(delhi, jaipur)
	// Great-circle distance Delhi-Jaipur is about 237km.
	if math.Abs(got-237000) > 3000 {
		t.Fatalf("distance = %vm, want ~237000m", got)
	}

	if d := HaversineMeters(delhi, delhi); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestInterpolate(t *testing.T) {
	a := domain.Coordinates{Lat: 28.0, Lon: 77.0}
	b := domain.Coordinates{Lat: 29.0, Lon: 78.0}

	mid := Interpolate(a, b, 0.5)
	if mid.Lat != 28.5 || mid.Lon != 77.5 {
		t.Fatalf("midpoint = %+v, want (28.5, 77.5)", mid)
	}

	// Fractions are clamped to [0, 1].
	if got := Interpolate(a, b, -1); got != a {
		t.Fatalf("negative fraction = %+v, want start point", got)
	}
	if got := Interpolate(a, b, 2); got != b {
		t.Fatalf("fraction above 1 = %+v, want end point", got)
	}
}

func TestPointAtFraction(t *testing.T) {
	path := []domain.Coordinates{
		{Lat: 28.0, Lon: 77.0},
		{Lat: 28.1, Lon: 77.0},
		{Lat: 28.2, Lon: 77.0},
		{Lat: 28.3, Lon: 77.0},
	}

	if _, ok := PointAtFraction(nil, 0.5); ok {
		t.Fatalf("empty path must report no point")
	}

	p, ok := PointAtFraction(path, 0)
	if !ok || p != path[0] {
		t.Fatalf("fraction 0 = %+v, want first vertex", p)
	}

	p, _ = PointAtFraction(path, 0.5)
	if p != path[2] {
		t.Fatalf("fraction 0.5 = %+v, want vertex 2", p)
	}

	p, _ = PointAtFraction(path, 1)
	if p != path[3] {
		t.Fatalf("fraction 1 = %+v, want last vertex", p)
	}
}

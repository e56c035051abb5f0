// Package spatial provides the great-circle math the simulators need:
// distances between event candidates and interpolation of event locations
// along route geometry.
package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"roadtrip-planner-service/internal/domain"
)

const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two points.
func HaversineMeters(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Interpolate returns the point a fraction of the way from a to b.
// Linear in lat/lon, which is adequate at segment scale.
func Interpolate(a, b domain.Coordinates, frac float64) domain.Coordinates {
	frac = clamp01(frac)
	return domain.Coordinates{
		Lat: a.Lat + (b.Lat-a.Lat)*frac,
		Lon: a.Lon + (b.Lon-a.Lon)*frac,
	}
}

// PointAtFraction picks the path vertex closest to a fraction of the total
// route distance, assuming vertices are roughly evenly spaced.
func PointAtFraction(path []domain.Coordinates, frac float64) (domain.Coordinates, bool) {
	if len(path) == 0 {
		return domain.Coordinates{}, false
	}
	frac = clamp01(frac)
	idx := int(math.Floor(float64(len(path)) * frac))
	if idx > len(path)-1 {
		idx = len(path) - 1
	}
	return path[idx], true
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

package ports

import (
	"context"

	"roadtrip-planner-service/internal/domain"
)

// StationQuery locates a fuel station near a point a given distance along
// the route. RoutePath is the route polyline the distance is measured on.
type StationQuery struct {
	DistanceAlongRouteKm float64
	RoutePath            []domain.Coordinates
	TotalRouteKm         float64
	RadiusMeters         int
}

// RegionInfo is the administrative context of a coordinate.
type RegionInfo struct {
	State    string
	Locality string
}

// Port: boundary to the places/geocoding backend. All lookups are blocking
// best-effort calls with no built-in retry beyond transport-level backoff;
// callers degrade on failure instead of aborting the plan.
type PlacesProvider interface {
	// Return the nearest plausible fuel station, or ErrNotFound.
	FindFuelStation(ctx context.Context, q StationQuery) (*domain.StationInfo, error)

	// Return lodging options near a coordinate, best rated first.
	FindLodging(ctx context.Context, at domain.Coordinates, radiusMeters int, minRating float64) ([]domain.Lodging, error)

	// Return dining options near a coordinate for one search strategy.
	// placeType is the provider's category filter; keyword may be empty.
	FindRestaurants(ctx context.Context, at domain.Coordinates, radiusMeters int, placeType, keyword string) ([]domain.Restaurant, error)

	// Resolve the administrative region and locality of a coordinate.
	ReverseGeocode(ctx context.Context, at domain.Coordinates) (RegionInfo, error)
}

package ports

import (
	"context"
	"time"

	"roadtrip-planner-service/internal/domain"
)

// VehicleProfile is a named, reusable set of vehicle parameters.
type VehicleProfile struct {
	Name      string
	Vehicle   domain.Vehicle
	UpdatedAt time.Time
}

// Port: a boundary for persisting vehicle profiles.
type ProfileRepository interface {
	ListVehicleProfiles(ctx context.Context) ([]VehicleProfile, error)
	// Return the named profile, or ErrNotFound.
	GetVehicleProfile(ctx context.Context, name string) (*VehicleProfile, error)
	SaveVehicleProfile(ctx context.Context, p VehicleProfile) error
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	repo := NewSqliteProfileRepository(newTestDB(t))
	ctx := context.Background()

	profile := ports.VehicleProfile{
		Name: "family-car",
		Vehicle: domain.Vehicle{
			Type:               domain.VehicleCar,
			Fuel:               domain.FuelPetrol,
			MileageKmPerLiter:  15,
			TankCapacityLiters: 40,
		},
	}
	if err := repo.SaveVehicleProfile(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetVehicleProfile(ctx, "family-car")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Vehicle != profile.Vehicle {
		t.Fatalf("vehicle = %+v, want %+v", got.Vehicle, profile.Vehicle)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatalf("updated_at must be set on save")
	}
}

func TestProfileRepositoryUpsert(t *testing.T) {
	repo := NewSqliteProfileRepository(newTestDB(t))
	ctx := context.Background()

	profile := ports.VehicleProfile{
		Name: "hauler",
		Vehicle: domain.Vehicle{
			Type:               domain.VehicleTruck,
			Fuel:               domain.FuelDiesel,
			MileageKmPerLiter:  5,
			TankCapacityLiters: 200,
		},
	}
	if err := repo.SaveVehicleProfile(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	profile.Vehicle.MileageKmPerLiter = 6
	if err := repo.SaveVehicleProfile(ctx, profile); err != nil {
		t.Fatalf("save again: %v", err)
	}

	all, err := repo.ListVehicleProfiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("profiles = %d, want 1 after upsert", len(all))
	}
	if all[0].Vehicle.MileageKmPerLiter != 6 {
		t.Fatalf("mileage = %v, want updated value 6", all[0].Vehicle.MileageKmPerLiter)
	}
}

func TestProfileRepositoryNotFound(t *testing.T) {
	repo := NewSqliteProfileRepository(newTestDB(t))

	_, err := repo.GetVehicleProfile(context.Background(), "missing")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileRepositoryRejectsInvalidVehicle(t *testing.T) {
	repo := NewSqliteProfileRepository(newTestDB(t))

	bad := ports.VehicleProfile{
		Name:    "broken",
		Vehicle: domain.Vehicle{Type: "Hovercraft", Fuel: domain.FuelPetrol, MileageKmPerLiter: 10, TankCapacityLiters: 40},
	}
	if err := repo.SaveVehicleProfile(context.Background(), bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

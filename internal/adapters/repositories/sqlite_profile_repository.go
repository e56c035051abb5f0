package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

// SQLite backed store for named vehicle profiles.
type SqliteProfileRepository struct {
	DB *sql.DB
}

func NewSqliteProfileRepository(db *sql.DB) *SqliteProfileRepository {
	return &SqliteProfileRepository{DB: db}
}

func (s *SqliteProfileRepository) ListVehicleProfiles(ctx context.Context) ([]ports.VehicleProfile, error) {
	if s.DB == nil {
		return nil, errors.New("profile repository: db is nil")
	}

	q := `
	SELECT name, vehicle_type, fuel_type, mileage_kmpl, tank_capacity_liters, updated_at
	FROM vehicle_profiles
	ORDER BY name;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list vehicle profiles: query vehicle_profiles table: %w", err)
	}
	defer rows.Close()

	var out []ports.VehicleProfile
	for rows.Next() {
		p, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list vehicle profiles: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vehicle profiles: row iteration: %w", err)
	}

	return out, nil
}

func (s *SqliteProfileRepository) GetVehicleProfile(ctx context.Context, name string) (*ports.VehicleProfile, error) {
	if s.DB == nil {
		return nil, errors.New("profile repository: db is nil")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile repository: empty profile name")
	}

	q := `
	SELECT name, vehicle_type, fuel_type, mileage_kmpl, tank_capacity_liters, updated_at
	FROM vehicle_profiles
	WHERE name = ?;
	`

	row := s.DB.QueryRowContext(ctx, q, name)
	p, err := scanProfile(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get vehicle profile %q: %w", name, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle profile %q: %w", name, err)
	}

	return &p, nil
}

func (s *SqliteProfileRepository) SaveVehicleProfile(ctx context.Context, p ports.VehicleProfile) error {
	if s.DB == nil {
		return errors.New("profile repository: db is nil")
	}

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("save vehicle profile: empty profile name")
	}
	if err := p.Vehicle.Validate(); err != nil {
		return fmt.Errorf("save vehicle profile %q: %w", p.Name, err)
	}

	q := `
	INSERT OR REPLACE INTO vehicle_profiles (
		name,
		vehicle_type,
		fuel_type,
		mileage_kmpl,
		tank_capacity_liters,
		updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err := s.DB.ExecContext(ctx, q,
		p.Name,
		string(p.Vehicle.Type),
		string(p.Vehicle.Fuel),
		p.Vehicle.MileageKmPerLiter,
		p.Vehicle.TankCapacityLiters,
		updatedAt.Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("save vehicle profile %q: %w", p.Name, err)
	}

	return nil
}

func scanProfile(scan func(...any) error) (ports.VehicleProfile, error) {
	var (
		p         ports.VehicleProfile
		vType     string
		fType     string
		updatedAt string
	)
	if err := scan(&p.Name, &vType, &fType, &p.Vehicle.MileageKmPerLiter, &p.Vehicle.TankCapacityLiters, &updatedAt); err != nil {
		return ports.VehicleProfile{}, err
	}

	p.Vehicle.Type = domain.VehicleType(vType)
	p.Vehicle.Fuel = domain.FuelType(fType)

	ts, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return ports.VehicleProfile{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	p.UpdatedAt = ts

	return p, nil
}

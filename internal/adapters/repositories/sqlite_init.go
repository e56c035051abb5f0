package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS vehicle_profiles (
		name TEXT PRIMARY KEY,
		vehicle_type TEXT NOT NULL,
		fuel_type TEXT NOT NULL,
		mileage_kmpl REAL NOT NULL,
		tank_capacity_liters REAL NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	createRegionCacheQuery := `
	CREATE TABLE IF NOT EXISTS region_cache (
		coord_key TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		locality TEXT NOT NULL
	);
	`

	createFuelPriceFallbackQuery := `
	CREATE TABLE IF NOT EXISTS fuel_price_fallback (
		state TEXT PRIMARY KEY,
		petrol_per_liter REAL NOT NULL,
		diesel_per_liter REAL NOT NULL
	);
	`

	statements := []string{
		createProfilesQuery,
		createRegionCacheQuery,
		createFuelPriceFallbackQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type FuelPriceSeed struct {
	State  string  `json:"state"`
	Petrol float64 `json:"petrol"`
	Diesel float64 `json:"diesel"`
}

// Populate the fallback price table from a JSON file.
func SeedFuelPricesFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fuel prices: read %q: %w", jsonPath, err)
	}

	var data []FuelPriceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed fuel prices: parse json: %w", err)
	}

	rows := make([]FuelPriceSeed, 0, len(data))
	for i, item := range data {
		state := strings.ToLower(strings.TrimSpace(item.State))
		if state == "" {
			return fmt.Errorf("seed fuel prices: item at index %d: state cannot be empty", i+1)
		}
		if item.Petrol <= 0 || item.Diesel <= 0 {
			return fmt.Errorf("seed fuel prices: invalid prices for state %q: petrol=%v diesel=%v", state, item.Petrol, item.Diesel)
		}
		rows = append(rows, FuelPriceSeed{State: state, Petrol: item.Petrol, Diesel: item.Diesel})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fuel prices: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO fuel_price_fallback (
		state,
		petrol_per_liter,
		diesel_per_liter
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed fuel prices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.State, p.Petrol, p.Diesel); err != nil {
			return fmt.Errorf("seed fuel prices: insert state=%q: %w", p.State, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fuel prices: commit tx: %w", err)
	}

	return nil
}

package fuelprice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roadtrip-planner-service/internal/ports"
)

// Region used when no fallback row matches the requested state.
const defaultFallbackState = "delhi"

// SqliteFallbackStore serves pump prices from the seeded
// fuel_price_fallback table. It always marks results as estimates.
type SqliteFallbackStore struct {
	DB *sql.DB
}

func NewSqliteFallbackStore(db *sql.DB) *SqliteFallbackStore {
	return &SqliteFallbackStore{DB: db}
}

// GetFuelPrices matches region against the fallback table. Matching is
// loose in both directions ("Delhi NCT" matches the "delhi" row and vice
// versa) and falls back to the default state when nothing matches.
func (s *SqliteFallbackStore) GetFuelPrices(ctx context.Context, region string) (ports.FuelPrices, error) {
	if s.DB == nil {
		return ports.FuelPrices{}, errors.New("fuel price fallback: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT state, petrol_per_liter, diesel_per_liter
	FROM fuel_price_fallback;
	`)
	if err != nil {
		return ports.FuelPrices{}, fmt.Errorf("fuel price fallback: query table: %w", err)
	}
	defer rows.Close()

	type row struct {
		state          string
		petrol, diesel float64
	}

	var all []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.state, &r.petrol, &r.diesel); err != nil {
			return ports.FuelPrices{}, fmt.Errorf("fuel price fallback: scan rows: %w", err)
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return ports.FuelPrices{}, fmt.Errorf("fuel price fallback: row iteration: %w", err)
	}
	if len(all) == 0 {
		return ports.FuelPrices{}, errors.New("fuel price fallback: table is empty")
	}

	want := strings.ToLower(strings.TrimSpace(region))

	match := func(name string) (row, bool) {
		for _, r := range all {
			key := strings.ToLower(r.state)
			if key == name || strings.Contains(name, key) || strings.Contains(key, name) {
				return r, true
			}
		}
		return row{}, false
	}

	matched, ok := row{}, false
	if want != "" {
		matched, ok = match(want)
	}
	if !ok {
		matched, ok = match(defaultFallbackState)
	}
	if !ok {
		// No default row seeded either; use the first row rather than fail.
		matched = all[0]
	}

	return ports.FuelPrices{
		PetrolPerLiter: matched.petrol,
		DieselPerLiter: matched.diesel,
		Source:         fmt.Sprintf("Fallback Prices (State: %s)", matched.state),
		IsEstimate:     true,
	}, nil
}

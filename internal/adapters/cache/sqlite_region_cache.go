package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roadtrip-planner-service/internal/ports"
)

// SQLite backed cache mapping coordinate keys to administrative regions.
// Coordinate keys are expected to be consistent (rounded) by the caller.
type SqliteRegionCache struct {
	DB *sql.DB
}

func NewSqliteRegionCache(db *sql.DB) *SqliteRegionCache {
	return &SqliteRegionCache{DB: db}
}

// Fetch the cached region for a coordinate key. The second return value
// reports whether the key was present.
func (s *SqliteRegionCache) Get(ctx context.Context, key string) (ports.RegionInfo, bool, error) {
	if s.DB == nil {
		return ports.RegionInfo{}, false, errors.New("region cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.RegionInfo{}, false, errors.New("region cache: empty coordinate key")
	}

	q := `
	SELECT state, locality
	FROM region_cache
	WHERE coord_key = ?;
	`

	var info ports.RegionInfo
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&info.State, &info.Locality)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RegionInfo{}, false, nil
	}
	if err != nil {
		return ports.RegionInfo{}, false, fmt.Errorf("get region cache: query region_cache table: %w", err)
	}

	return info, true, nil
}

// Store a coordinate key -> region mapping in the cache.
func (s *SqliteRegionCache) Put(ctx context.Context, key string, info ports.RegionInfo) error {
	if s.DB == nil {
		return errors.New("region cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("region cache: empty coordinate key")
	}

	q := `
	INSERT OR REPLACE INTO region_cache (coord_key, state, locality)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, info.State, info.Locality); err != nil {
		return fmt.Errorf("insert region cache coord=%q: %w", key, err)
	}

	return nil
}

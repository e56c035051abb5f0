package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"roadtrip-planner-service/internal/platform/obs"
	"roadtrip-planner-service/internal/ports"
)

// SQLRegionCache is the Postgres-backed variant of the region cache, for
// deployments sharing one cache across instances.
type SQLRegionCache struct {
	DB *sql.DB
}

func NewSQLRegionCache(db *sql.DB) *SQLRegionCache {
	return &SQLRegionCache{DB: db}
}

// Fetch the cached region for a coordinate key.
func (s *SQLRegionCache) Get(ctx context.Context, key string) (_ ports.RegionInfo, _ bool, err error) {
	defer obs.Time(ctx, "region.cache.Get")(&err)

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
	WHERE coord_key = $1;
	`

	var info ports.RegionInfo
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&info.State, &info.Locality)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RegionInfo{}, false, nil
	}
	if err != nil {
		return ports.RegionInfo{}, false, fmt.Errorf("get region cache: query region_cache table: %w", err)
	}

	return info, true, nil
}

// Store a coordinate key -> region mapping in the cache.
func (s *SQLRegionCache) Put(ctx context.Context, key string, info ports.RegionInfo) (err error) {
	defer obs.Time(ctx, "region.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("region cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("region cache: empty coordinate key")
	}

	q := `
	INSERT INTO region_cache (coord_key, state, locality)
	VALUES ($1, $2, $3)
	ON CONFLICT (coord_key) DO UPDATE
	SET state = EXCLUDED.state,
		locality = EXCLUDED.locality;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, info.State, info.Locality); err != nil {
		return fmt.Errorf("insert region cache coord=%q: %w", key, err)
	}

	return nil
}

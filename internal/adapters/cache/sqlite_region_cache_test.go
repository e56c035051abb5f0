package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"roadtrip-planner-service/internal/adapters/repositories"
	"roadtrip-planner-service/internal/ports"
)

func newCacheDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRegionCacheRoundTrip(t *testing.T) {
	c := NewSqliteRegionCache(newCacheDB(t))
	ctx := context.Background()

	key := "26.9124,75.7873"
	info := ports.RegionInfo{State: "Rajasthan", Locality: "Jaipur"}

	if _, ok, err := c.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get before Put: ok=%v err=%v", ok, err)
	}

	if err := c.Put(ctx, key, info); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != info {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, info)
	}
}

func TestSqliteRegionCacheOverwrite(t *testing.T) {
	c := NewSqliteRegionCache(newCacheDB(t))
	ctx := context.Background()

	key := "28.6139,77.2090"
	if err := c.Put(ctx, key, ports.RegionInfo{State: "Delhi", Locality: ""}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := c.Put(ctx, key, ports.RegionInfo{State: "Delhi", Locality: "New Delhi"}); err != nil {
		t.Fatalf("put again: %v", err)
	}

	got, ok, _ := c.Get(ctx, key)
	if !ok || got.Locality != "New Delhi" {
		t.Fatalf("got %+v, want updated locality", got)
	}
}

func TestSqliteRegionCacheRejectsEmptyKey(t *testing.T) {
	c := NewSqliteRegionCache(newCacheDB(t))

	if err := c.Put(context.Background(), "  ", ports.RegionInfo{State: "Delhi"}); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

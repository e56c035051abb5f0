// Package db opens the shared Postgres database that backs the
// cross-instance region cache.
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects via pgx with a pool sized for the region cache's small,
// bursty lookup traffic, and verifies the connection before returning.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db: verify postgres connection: %w", err)
	}

	return db, nil
}

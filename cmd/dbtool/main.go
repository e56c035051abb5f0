package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"roadtrip-planner-service/internal/platform/db"
)

// dbtool provisions the shared Postgres region cache used by multi-instance
// deployments. The per-instance SQLite schema is created by the server on
// startup instead.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing region cache schema...")
	if err := initRegionCache(pg); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema ready.")
}

func initRegionCache(pg *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS region_cache (
		coord_key TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		locality TEXT NOT NULL
	);
	`

	if _, err := pg.Exec(q); err != nil {
		return fmt.Errorf("init region cache: create table: %w", err)
	}

	return nil
}

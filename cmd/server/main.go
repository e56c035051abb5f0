package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"roadtrip-planner-service/internal/adapters/cache"
	"roadtrip-planner-service/internal/adapters/fuelprice"
	"roadtrip-planner-service/internal/adapters/places"
	"roadtrip-planner-service/internal/adapters/repositories"
	"roadtrip-planner-service/internal/adapters/route"
	"roadtrip-planner-service/internal/adapters/toll"
	"roadtrip-planner-service/internal/api"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, ORS, Google, TollGuru) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := getEnv("DB_PATH", "data/app.db")
	seedPath := getEnv("SEED_PATH", "data/seeds/fuel_prices.json")
	port := getEnv("PORT", "8080")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed fallback prices on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	routeProvider, err := route.NewORSRouteProvider(orsKey, getEnv("GEOCODE_COUNTRY", "IN"))
	if err != nil {
		log.Fatal(err)
	}

	// Reverse-geocode results are stable, so they persist in SQLite.
	regionCache := cache.NewSqliteRegionCache(db)
	placesProvider, err := places.NewGooglePlacesProvider(mapsKey, regionCache)
	if err != nil {
		log.Fatal(err)
	}

	priceProvider, err := buildPriceService(db)
	if err != nil {
		log.Fatal(err)
	}

	// TollGuru is optional; without a key the estimator falls back to its
	// distance heuristic.
	var tollProvider ports.TollProvider
	if key := os.Getenv("TOLLGURU_API_KEY"); strings.TrimSpace(key) != "" {
		tp, err := toll.NewTollGuruProvider(key)
		if err != nil {
			log.Fatal(err)
		}
		tollProvider = tp
	} else {
		log.Println("TOLLGURU_API_KEY not set, toll costs will be estimated")
	}

	planner := &services.Planner{
		Routes: routeProvider,
		Places: placesProvider,
		Prices: priceProvider,
		Tolls:  tollProvider,
	}

	repo := repositories.NewSqliteProfileRepository(db)
	router := api.NewRouter(planner, repo)

	// Timeouts are tuned for full itinerary planning (multiple external APIs).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFuelPricesFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func buildPriceService(db *sql.DB) (ports.FuelPriceProvider, error) {
	var remote ports.FuelPriceProvider
	if baseURL := os.Getenv("FUEL_PRICE_API_URL"); strings.TrimSpace(baseURL) != "" {
		rc, err := fuelprice.NewRemoteClient(baseURL, os.Getenv("FUEL_PRICE_API_KEY"))
		if err != nil {
			return nil, err
		}
		remote = rc
	} else {
		log.Println("FUEL_PRICE_API_URL not set, fuel prices served from fallback table")
	}

	return fuelprice.NewPriceService(remote, fuelprice.NewSqliteFallbackStore(db))
}

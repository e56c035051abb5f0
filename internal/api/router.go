package api

import (
	"net/http"

	"roadtrip-planner-service/internal/api/handlers"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner *services.Planner, profiles ports.ProfileRepository) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{Planner: planner, Profiles: profiles}
	profileHandler := &handlers.ProfileHandler{Repo: profiles}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/profiles/vehicles", profileHandler.Profiles)

	return loggingMiddleware(mux)
}

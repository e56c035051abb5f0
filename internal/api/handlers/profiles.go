package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"roadtrip-planner-service/internal/api/dto"
	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

type ProfileHandler struct {
	Repo ports.ProfileRepository
}

// Profiles dispatches list and upsert for stored vehicle profiles.
func (h *ProfileHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPut, http.MethodPost:
		h.save(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Repo.ListVehicleProfiles(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to list vehicle profiles")
		return
	}

	res := dto.ListVehicleProfilesResponse{
		Profiles: make([]dto.VehicleProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		res.Profiles = append(res.Profiles, dto.VehicleProfileResponse{
			Name: p.Name,
			Vehicle: dto.VehicleDTO{
				Type:               string(p.Vehicle.Type),
				Fuel:               string(p.Vehicle.Fuel),
				MileageKmPerLiter:  p.Vehicle.MileageKmPerLiter,
				TankCapacityLiters: p.Vehicle.TankCapacityLiters,
			},
			UpdatedAt: p.UpdatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ProfileHandler) save(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "profile name is required")
		return
	}

	profile := ports.VehicleProfile{
		Name: strings.TrimSpace(req.Name),
		Vehicle: domain.Vehicle{
			Type:               domain.VehicleType(req.Vehicle.Type),
			Fuel:               domain.FuelType(req.Vehicle.Fuel),
			MileageKmPerLiter:  req.Vehicle.MileageKmPerLiter,
			TankCapacityLiters: req.Vehicle.TankCapacityLiters,
		},
	}
	if err := profile.Vehicle.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.SaveVehicleProfile(r.Context(), profile); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "profile not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to save vehicle profile")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "saved"})
}

package dto

import "time"

type VehicleProfileRequest struct {
	Name    string     `json:"name"`
	Vehicle VehicleDTO `json:"vehicle"`
}

type VehicleProfileResponse struct {
	Name      string     `json:"name"`
	Vehicle   VehicleDTO `json:"vehicle"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ListVehicleProfilesResponse struct {
	Profiles []VehicleProfileResponse `json:"profiles"`
}

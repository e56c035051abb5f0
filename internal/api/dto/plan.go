package dto

import "time"

type VehicleDTO struct {
	Type               string  `json:"type"`
	Fuel               string  `json:"fuel"`
	MileageKmPerLiter  float64 `json:"mileage_kmpl"`
	TankCapacityLiters float64 `json:"tank_capacity_liters"`
}

type PlanRequest struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartAt    *time.Time `json:"depart_at"`
	// "HH:MM" strings; defaults apply when omitted.
	WindowStart string     `json:"window_start"`
	WindowEnd   string     `json:"window_end"`
	Breakfast   string     `json:"breakfast_time"`
	Lunch       string     `json:"lunch_time"`
	Dinner      string     `json:"dinner_time"`
	Vehicle     VehicleDTO `json:"vehicle"`
	// ProfileName loads vehicle parameters from a stored profile when the
	// inline vehicle block is omitted.
	ProfileName string `json:"profile_name"`
}

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StationResponse struct {
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	Rating   float64             `json:"rating"`
	IsOpen   bool                `json:"is_open"`
	MapsURL  string              `json:"maps_url"`
	Location CoordinatesResponse `json:"location"`
	State    string              `json:"state,omitempty"`
}

type FuelStopResponse struct {
	CumulativeDistanceMeters int              `json:"cumulative_distance_meters"`
	DistanceFromPrevMeters   int              `json:"distance_from_prev_meters"`
	LitersAdded              float64          `json:"liters_added"`
	PricePerLiter            float64          `json:"price_per_liter"`
	SegmentCost              float64          `json:"segment_cost"`
	FuelRemainingLiters      float64          `json:"fuel_remaining_liters"`
	IsDestinationFill        bool             `json:"is_destination_fill"`
	Region                   string           `json:"region,omitempty"`
	PriceSource              string           `json:"price_source,omitempty"`
	PriceIsEstimate          bool             `json:"price_is_estimate"`
	Station                  *StationResponse `json:"station,omitempty"`
}

type LodgingResponse struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	IsOpen  bool    `json:"is_open"`
	MapsURL string  `json:"maps_url,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Website string  `json:"website,omitempty"`
}

type RestStopResponse struct {
	ArrivalAt                time.Time         `json:"arrival_at"`
	CumulativeDistanceMeters int               `json:"cumulative_distance_meters"`
	DistanceFromPrevMeters   int               `json:"distance_from_prev_meters"`
	IsFinalDestination       bool              `json:"is_final_destination"`
	ResumeAt                 *time.Time        `json:"resume_at,omitempty"`
	RestDurationSeconds      *int              `json:"rest_duration_seconds,omitempty"`
	TotalWithRestsSeconds    int               `json:"total_with_rests_seconds"`
	Locality                 string            `json:"locality,omitempty"`
	Hotels                   []LodgingResponse `json:"hotels"`
}

type RestaurantResponse struct {
	Name                string              `json:"name"`
	Address             string              `json:"address"`
	Rating              float64             `json:"rating"`
	IsOpen              bool                `json:"is_open"`
	MapsURL             string              `json:"maps_url,omitempty"`
	Location            CoordinatesResponse `json:"location"`
	DistanceFromRouteKm float64             `json:"distance_from_route_km"`
	Placeholder         bool                `json:"placeholder"`
}

type MealStopResponse struct {
	Kind                     string               `json:"kind"`
	Day                      int                  `json:"day"`
	TargetAt                 time.Time            `json:"target_at"`
	Location                 CoordinatesResponse  `json:"location"`
	CumulativeDistanceMeters int                  `json:"cumulative_distance_meters"`
	DistanceFromPrevMeters   int                  `json:"distance_from_prev_meters"`
	SuppressedDuration       bool                 `json:"suppressed_duration"`
	DurationSeconds          *int                 `json:"duration_seconds,omitempty"`
	Locality                 string               `json:"locality,omitempty"`
	Restaurants              []RestaurantResponse `json:"restaurants"`
}

type TollPricesResponse struct {
	Cash    float64 `json:"cash"`
	Tag     float64 `json:"tag"`
	Return  float64 `json:"return"`
	Monthly float64 `json:"monthly"`
}

type TollBoothResponse struct {
	Name           string               `json:"name"`
	City           string               `json:"city,omitempty"`
	Cost           float64              `json:"cost"`
	Prices         TollPricesResponse   `json:"prices"`
	Location       *CoordinatesResponse `json:"location,omitempty"`
	MapsURL        string               `json:"maps_url,omitempty"`
	PaymentMethods []string             `json:"payment_methods,omitempty"`
}

type TollResponse struct {
	TotalCost   float64             `json:"total_cost"`
	BoothCount  int                 `json:"booth_count"`
	Booths      []TollBoothResponse `json:"booths"`
	IsEstimate  bool                `json:"is_estimate"`
	VehicleType string              `json:"vehicle_type"`
}

type TripCostResponse struct {
	FuelCost         float64 `json:"fuel_cost"`
	TollCost         float64 `json:"toll_cost"`
	Total            float64 `json:"total"`
	FuelLitersAdded  float64 `json:"fuel_liters_added"`
	AvgPricePerLiter float64 `json:"avg_price_per_liter"`
	FuelIsEstimate   bool    `json:"fuel_is_estimate"`
	TollIsEstimate   bool    `json:"toll_is_estimate"`
}

type PlanResponse struct {
	Origin                string             `json:"origin"`
	Destination           string             `json:"destination"`
	DepartAt              time.Time          `json:"depart_at"`
	Vehicle               VehicleDTO         `json:"vehicle"`
	TotalDistanceMeters   int                `json:"total_distance_meters"`
	TotalDurationSeconds  int                `json:"total_duration_seconds"`
	TotalWithRestsSeconds int                `json:"total_with_rests_seconds"`
	FuelStops             []FuelStopResponse `json:"fuel_stops"`
	RestStops             []RestStopResponse `json:"rest_stops"`
	MealStops             []MealStopResponse `json:"meal_stops"`
	Toll                  TollResponse       `json:"toll"`
	Cost                  TripCostResponse   `json:"cost"`
}

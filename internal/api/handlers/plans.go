package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"roadtrip-planner-service/internal/api/dto"
	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/services"
)

// Defaults applied when the request omits the driving window or meal times.
const (
	defaultWindowStart = "06:00"
	defaultWindowEnd   = "19:00"
	defaultBreakfast   = "08:00"
	defaultLunch       = "13:00"
	defaultDinner      = "20:00"
)

type PlanHandler struct {
	Planner  *services.Planner
	Profiles ports.ProfileRepository
}

// Plan computes a full itinerary for one origin/destination pair.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	planReq, err := h.buildPlanRequest(r, req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := h.Planner.PlanTrip(r.Context(), planReq)
	if err != nil {
		if errors.Is(err, services.ErrRouteUnavailable) {
			log.Printf("plan failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "route unavailable")
			return
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(itinerary))
}

func (h *PlanHandler) buildPlanRequest(r *http.Request, req dto.PlanRequest) (services.PlanRequest, error) {
	var out services.PlanRequest

	out.Origin = req.Origin
	out.Destination = req.Destination

	out.DepartAt = time.Now()
	if req.DepartAt != nil {
		out.DepartAt = *req.DepartAt
	}

	var err error
	if out.WindowStart, err = parseOrDefault(req.WindowStart, defaultWindowStart); err != nil {
		return out, err
	}
	if out.WindowEnd, err = parseOrDefault(req.WindowEnd, defaultWindowEnd); err != nil {
		return out, err
	}
	if out.Meals.Breakfast, err = parseOrDefault(req.Breakfast, defaultBreakfast); err != nil {
		return out, err
	}
	if out.Meals.Lunch, err = parseOrDefault(req.Lunch, defaultLunch); err != nil {
		return out, err
	}
	if out.Meals.Dinner, err = parseOrDefault(req.Dinner, defaultDinner); err != nil {
		return out, err
	}

	out.Vehicle = domain.Vehicle{
		Type:               domain.VehicleType(req.Vehicle.Type),
		Fuel:               domain.FuelType(req.Vehicle.Fuel),
		MileageKmPerLiter:  req.Vehicle.MileageKmPerLiter,
		TankCapacityLiters: req.Vehicle.TankCapacityLiters,
	}

	if req.Vehicle.Type == "" && req.ProfileName != "" {
		if h.Profiles == nil {
			return out, errors.New("vehicle profiles are not configured")
		}
		profile, err := h.Profiles.GetVehicleProfile(r.Context(), req.ProfileName)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return out, errors.New("unknown vehicle profile " + req.ProfileName)
			}
			return out, err
		}
		out.Vehicle = profile.Vehicle
	}

	return out, nil
}

func parseOrDefault(s, fallback string) (domain.TimeOfDay, error) {
	if s == "" {
		s = fallback
	}
	return domain.ParseTimeOfDay(s)
}

func toPlanResponse(it *domain.Itinerary) dto.PlanResponse {
	res := dto.PlanResponse{
		Origin:      it.Route.Origin,
		Destination: it.Route.Destination,
		DepartAt:    it.DepartAt,
		Vehicle: dto.VehicleDTO{
			Type:               string(it.Vehicle.Type),
			Fuel:               string(it.Vehicle.Fuel),
			MileageKmPerLiter:  it.Vehicle.MileageKmPerLiter,
			TankCapacityLiters: it.Vehicle.TankCapacityLiters,
		},
		TotalDistanceMeters:   it.Route.TotalDistanceMeters,
		TotalDurationSeconds:  it.Route.TotalDurationSeconds,
		TotalWithRestsSeconds: int(it.TotalWithRests.Seconds()),
		FuelStops:             make([]dto.FuelStopResponse, 0, len(it.FuelStops)),
		RestStops:             make([]dto.RestStopResponse, 0, len(it.RestStops)),
		MealStops:             make([]dto.MealStopResponse, 0, len(it.MealStops)),
		Toll:                  toTollResponse(it.Toll),
		Cost: dto.TripCostResponse{
			FuelCost:         it.Cost.FuelCost,
			TollCost:         it.Cost.TollCost,
			Total:            it.Cost.Total,
			FuelLitersAdded:  it.Cost.FuelLitersAdded,
			AvgPricePerLiter: it.Cost.AvgPricePerLiter,
			FuelIsEstimate:   it.Cost.FuelIsEstimate,
			TollIsEstimate:   it.Cost.TollIsEstimate,
		},
	}

	for _, fs := range it.FuelStops {
		res.FuelStops = append(res.FuelStops, toFuelStopResponse(fs))
	}
	for _, rs := range it.RestStops {
		res.RestStops = append(res.RestStops, toRestStopResponse(rs))
	}
	for _, ms := range it.MealStops {
		res.MealStops = append(res.MealStops, toMealStopResponse(ms))
	}

	return res
}

func toCoords(c domain.Coordinates) dto.CoordinatesResponse {
	return dto.CoordinatesResponse{Lat: c.Lat, Lon: c.Lon}
}

func toFuelStopResponse(fs domain.FuelStop) dto.FuelStopResponse {
	out := dto.FuelStopResponse{
		CumulativeDistanceMeters: fs.CumulativeDistanceMeters,
		DistanceFromPrevMeters:   fs.DistanceFromPrevMeters,
		LitersAdded:              fs.LitersAdded,
		PricePerLiter:            fs.PricePerLiter,
		SegmentCost:              fs.SegmentCost,
		FuelRemainingLiters:      fs.FuelRemainingLiters,
		IsDestinationFill:        fs.IsDestinationFill,
		Region:                   fs.Region,
		PriceSource:              fs.PriceSource,
		PriceIsEstimate:          fs.PriceIsEstimate,
	}
	if fs.Station != nil {
		out.Station = &dto.StationResponse{
			Name:     fs.Station.Name,
			Address:  fs.Station.Address,
			Rating:   fs.Station.Rating,
			IsOpen:   fs.Station.IsOpen,
			MapsURL:  fs.Station.MapsURL,
			Location: toCoords(fs.Station.Location),
			State:    fs.Station.State,
		}
	}
	return out
}

func toRestStopResponse(rs domain.RestStop) dto.RestStopResponse {
	out := dto.RestStopResponse{
		ArrivalAt:                rs.ArrivalAt,
		CumulativeDistanceMeters: rs.CumulativeDistanceMeters,
		DistanceFromPrevMeters:   rs.DistanceFromPrevMeters,
		IsFinalDestination:       rs.IsFinalDestination,
		ResumeAt:                 rs.ResumeAt,
		TotalWithRestsSeconds:    int(rs.TotalWithRests.Seconds()),
		Locality:                 rs.Locality,
		Hotels:                   make([]dto.LodgingResponse, 0, len(rs.Hotels)),
	}
	if rs.RestDuration != nil {
		secs := int(rs.RestDuration.Seconds())
		out.RestDurationSeconds = &secs
	}
	for _, h := range rs.Hotels {
		out.Hotels = append(out.Hotels, dto.LodgingResponse{
			Name:    h.Name,
			Address: h.Address,
			Rating:  h.Rating,
			IsOpen:  h.IsOpen,
			MapsURL: h.MapsURL,
			Phone:   h.Phone,
			Website: h.Website,
		})
	}
	return out
}

func toMealStopResponse(ms domain.MealStop) dto.MealStopResponse {
	out := dto.MealStopResponse{
		Kind:                     string(ms.Kind),
		Day:                      ms.Day,
		TargetAt:                 ms.TargetAt,
		Location:                 toCoords(ms.Location),
		CumulativeDistanceMeters: ms.CumulativeDistanceMeters,
		DistanceFromPrevMeters:   ms.DistanceFromPrevMeters,
		SuppressedDuration:       ms.SuppressedDuration,
		Locality:                 ms.Locality,
		Restaurants:              make([]dto.RestaurantResponse, 0, len(ms.Restaurants)),
	}
	if ms.Duration != nil {
		secs := int(ms.Duration.Seconds())
		out.DurationSeconds = &secs
	}
	for _, r := range ms.Restaurants {
		out.Restaurants = append(out.Restaurants, dto.RestaurantResponse{
			Name:                r.Name,
			Address:             r.Address,
			Rating:              r.Rating,
			IsOpen:              r.IsOpen,
			MapsURL:             r.MapsURL,
			Location:            toCoords(r.Location),
			DistanceFromRouteKm: r.DistanceFromRouteKm,
			Placeholder:         r.Placeholder,
		})
	}
	return out
}

func toTollResponse(t domain.TollResult) dto.TollResponse {
	out := dto.TollResponse{
		TotalCost:   t.TotalCost,
		BoothCount:  t.BoothCount,
		Booths:      make([]dto.TollBoothResponse, 0, len(t.Booths)),
		IsEstimate:  t.IsEstimate,
		VehicleType: string(t.VehicleType),
	}
	for _, b := range t.Booths {
		booth := dto.TollBoothResponse{
			Name: b.Name,
			City: b.City,
			Cost: b.Cost,
			Prices: dto.TollPricesResponse{
				Cash:    b.Prices.Cash,
				Tag:     b.Prices.Tag,
				Return:  b.Prices.Return,
				Monthly: b.Prices.Monthly,
			},
			MapsURL:        b.MapsURL,
			PaymentMethods: b.PaymentMethods,
		}
		if b.Location != nil {
			loc := toCoords(*b.Location)
			booth.Location = &loc
		}
		out.Booths = append(out.Booths, booth)
	}
	return out
}

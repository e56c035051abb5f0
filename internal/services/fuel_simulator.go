package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

// DefaultLowFuelFraction is the tank fraction below which a refuel must be
// found before continuing.
const DefaultLowFuelFraction = 0.15

const (
	stationSearchRadiusMeters   = 50000
	destinationFillRadiusMeters = 10000
)

// FuelSimulator walks route segments tracking the tank level, decides where
// the vehicle must refuel, and emits fuel stops with cost.
//
// Intermediate stops always fill to full capacity rather than only enough to
// clear the threshold. Changing that would alter computed trip costs, so the
// policy is preserved as-is.
type FuelSimulator struct {
	Places ports.PlacesProvider
	Prices ports.FuelPriceProvider

	// LowFuelFraction defaults to DefaultLowFuelFraction when zero.
	LowFuelFraction float64
}

// fuelState is the explicit simulation state threaded through the segment
// walk. One instance per invocation; never shared.
type fuelState struct {
	tankCapacity     float64
	level            float64
	cumulativeMeters int
	lastStopMeters   int
}

// Simulate walks the route and returns the ordered fuel stop sequence,
// always ending with the mandatory destination fill.
func (s *FuelSimulator) Simulate(ctx context.Context, route *domain.Route, vehicle domain.Vehicle) ([]domain.FuelStop, error) {
	if len(route.Segments) == 0 {
		return nil, errors.New("fuel simulate: route has no segments")
	}
	if err := vehicle.Validate(); err != nil {
		return nil, fmt.Errorf("fuel simulate: %w", err)
	}

	frac := s.LowFuelFraction
	if frac == 0 {
		frac = DefaultLowFuelFraction
	}
	threshold := vehicle.TankCapacityLiters * frac
	mileage := vehicle.MileageKmPerLiter
	totalKm := float64(route.TotalDistanceMeters) / 1000
	path := route.Path()

	st := fuelState{
		tankCapacity: vehicle.TankCapacityLiters,
		level:        vehicle.TankCapacityLiters,
	}

	stops := make([]domain.FuelStop, 0, 2)

	for i, seg := range route.Segments {
		segKm := float64(seg.DistanceMeters) / 1000
		fuelNeeded := math.Max(0, segKm/mileage)
		levelBefore := st.level
		cumBeforeKm := float64(st.cumulativeMeters) / 1000

		triggered := false
		var searchKm, levelAtPump float64

		// Proactive: completing this segment would breach the threshold.
		// Search at the exact point the level hits the threshold.
		if levelBefore-fuelNeeded <= threshold {
			triggered = true
			travelableKm := math.Max(0, (levelBefore-threshold)*mileage)
			searchKm = math.Min(cumBeforeKm+travelableKm, totalKm)
			levelAtPump = threshold
		}

		st.level -= fuelNeeded
		st.cumulativeMeters += seg.DistanceMeters
		cumKm := float64(st.cumulativeMeters) / 1000

		// Reactive: level is already at or below the threshold. With exact
		// arithmetic the proactive check fires first; this re-checks the
		// same low-fuel invariant on the post-segment level.
		if !triggered && st.level <= threshold {
			triggered = true
			searchKm = math.Min(cumKm, totalKm)
			levelAtPump = st.level
		}

		// Lookahead: the next segment would strand the vehicle even though
		// neither check above fired on this one.
		if !triggered && i < len(route.Segments)-1 {
			nextNeeded := float64(route.Segments[i+1].DistanceMeters) / 1000 / mileage
			if st.level-nextNeeded <= threshold {
				triggered = true
				searchKm = math.Min(cumKm, totalKm)
				levelAtPump = st.level
			}
		}

		if !triggered || int(searchKm*1000) <= st.lastStopMeters {
			continue
		}

		station, err := s.Places.FindFuelStation(ctx, ports.StationQuery{
			DistanceAlongRouteKm: searchKm,
			RoutePath:            path,
			TotalRouteKm:         totalKm,
			RadiusMeters:         stationSearchRadiusMeters,
		})
		if err != nil {
			// Recognized failure mode: continue with the depleted level and
			// no stop recorded.
			log.Printf("fuel simulate: station lookup near %.1fkm failed: %v", searchKm, err)
			continue
		}

		region := s.resolveRegion(ctx, station)
		prices := s.lookupPrices(ctx, region)
		price := prices.PerLiter(string(vehicle.Fuel))

		levelAtPump = math.Max(0, levelAtPump)
		add := math.Max(0, st.tankCapacity-levelAtPump)
		stopMeters := int(math.Round(searchKm * 1000))

		stops = append(stops, domain.FuelStop{
			CumulativeDistanceMeters: stopMeters,
			DistanceFromPrevMeters:   stopMeters - st.lastStopMeters,
			LitersAdded:              add,
			PricePerLiter:            price,
			SegmentCost:              add * price,
			FuelRemainingLiters:      st.tankCapacity,
			Region:                   region,
			PriceSource:              prices.Source,
			PriceIsEstimate:          prices.IsEstimate,
			Station:                  station,
		})

		st.level = st.tankCapacity
		st.lastStopMeters = stopMeters
	}

	stops = append(stops, s.destinationFill(ctx, route, vehicle, &st, path, totalKm))
	return stops, nil
}

// destinationFill emits the unconditional final stop: the returned tank is
// full at trip end for cost-accounting purposes, regardless of the level.
func (s *FuelSimulator) destinationFill(ctx context.Context, route *domain.Route, vehicle domain.Vehicle, st *fuelState, path []domain.Coordinates, totalKm float64) domain.FuelStop {
	destCoord := route.Segments[len(route.Segments)-1].End

	station, err := s.Places.FindFuelStation(ctx, ports.StationQuery{
		DistanceAlongRouteKm: totalKm,
		RoutePath:            path,
		TotalRouteKm:         totalKm,
		RadiusMeters:         destinationFillRadiusMeters,
	})
	if err != nil {
		log.Printf("fuel simulate: destination station lookup failed: %v", err)
		station = nil
	}

	var region string
	if station != nil {
		region = s.resolveRegion(ctx, station)
	} else if info, gerr := s.Places.ReverseGeocode(ctx, destCoord); gerr == nil {
		region = info.State
	}
	prices := s.lookupPrices(ctx, region)
	price := prices.PerLiter(string(vehicle.Fuel))

	levelAtArrival := math.Max(0, st.level)
	add := math.Max(0, st.tankCapacity-levelAtArrival)

	return domain.FuelStop{
		CumulativeDistanceMeters: route.TotalDistanceMeters,
		DistanceFromPrevMeters:   route.TotalDistanceMeters - st.lastStopMeters,
		LitersAdded:              add,
		PricePerLiter:            price,
		SegmentCost:              add * price,
		FuelRemainingLiters:      st.tankCapacity,
		IsDestinationFill:        true,
		Region:                   region,
		PriceSource:              prices.Source,
		PriceIsEstimate:          prices.IsEstimate,
		Station:                  station,
	}
}

// resolveRegion determines the pricing region for a station: the provider's
// parsed state, then a name match against the address, then reverse geocode.
func (s *FuelSimulator) resolveRegion(ctx context.Context, station *domain.StationInfo) string {
	if station.State != "" {
		return station.State
	}
	if state := StateFromAddress(station.Address); state != "" {
		return state
	}
	if info, err := s.Places.ReverseGeocode(ctx, station.Location); err == nil && info.State != "" {
		return info.State
	}
	return ""
}

// lookupPrices never blocks the simulation: a failed lookup prices the fill
// at zero and flags the stop as an estimate.
func (s *FuelSimulator) lookupPrices(ctx context.Context, region string) ports.FuelPrices {
	prices, err := s.Prices.GetFuelPrices(ctx, region)
	if err != nil {
		log.Printf("fuel simulate: price lookup for %q failed: %v", region, err)
		return ports.FuelPrices{Source: "unavailable", IsEstimate: true}
	}
	return prices
}

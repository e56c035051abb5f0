package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
	"roadtrip-planner-service/internal/spatial"
)

const (
	mealBoundaryTolerance = 30 * time.Minute
	restaurantOptionLimit = 3
	// Pre-generate targets for the whole span the trip could plausibly
	// cover: full days plus partial-day and buffer days.
	mealBufferDays = 2
)

// MealTargets holds the traveler's fixed daily meal times.
type MealTargets struct {
	Breakfast domain.TimeOfDay
	Lunch     domain.TimeOfDay
	Dinner    domain.TimeOfDay
}

// mealTarget is one pre-generated (day, kind) slot; each fires at most once.
type mealTarget struct {
	at   time.Time
	kind domain.MealKind
	day  int
}

// restaurantStrategy is one step of the cascading search: progressively
// broader categories and radii until enough candidates are found.
type restaurantStrategy struct {
	placeType    string
	keyword      string
	radiusMeters int
}

var restaurantStrategies = []restaurantStrategy{
	{placeType: "restaurant", radiusMeters: 2000},
	{placeType: "food", keyword: "restaurant", radiusMeters: 2000},
	{placeType: "food", radiusMeters: 2000},
	{placeType: "restaurant", radiusMeters: 5000},
	{placeType: "food", keyword: "restaurant", radiusMeters: 5000},
	{placeType: "food", radiusMeters: 5000},
	{placeType: "food", radiusMeters: 10000},
}

// MealScheduler places meal events along the route at the traveler's target
// times, interpolating the location within the segment being driven, and
// suppresses the time cost of meals absorbed into an overnight rest window.
//
// The scheduler tracks its own driving clock over the segments; it MUST run
// after the time simulator because suppression needs the rest calendar.
type MealScheduler struct {
	Places ports.PlacesProvider
}

// Schedule returns meal events sorted by (day, target time).
func (s *MealScheduler) Schedule(
	ctx context.Context,
	route *domain.Route,
	departAt time.Time,
	targets MealTargets,
	rests []domain.RestStop,
) ([]domain.MealStop, error) {
	if len(route.Segments) == 0 {
		return nil, fmt.Errorf("meal schedule: route has no segments")
	}

	totalDriving := time.Duration(route.TotalDurationSeconds) * time.Second
	slots := buildMealSlots(departAt, totalDriving, targets)
	consumed := make(map[string]struct{}, len(slots))

	meals := make([]domain.MealStop, 0, len(slots))

	now := departAt
	distMeters := 0
	lastStopMeters := 0

	for i, seg := range route.Segments {
		segStart := now
		segEnd := now.Add(time.Duration(seg.DurationSeconds) * time.Second)
		segStartMeters := distMeters
		segEndMeters := distMeters + seg.DistanceMeters

		for _, slot := range slots {
			key := fmt.Sprintf("%d_%s", slot.day, slot.kind)
			if _, done := consumed[key]; done {
				continue
			}

			inSpan := !slot.at.Before(segStart) && !slot.at.After(segEnd)
			// Targets just outside the span still fire when this segment
			// continues seamlessly from the previous one.
			nearBoundary := i > 0 &&
				route.Segments[i-1].End == seg.Start &&
				slot.at.After(segStart.Add(-mealBoundaryTolerance)) &&
				slot.at.Before(segEnd.Add(mealBoundaryTolerance))

			if !inSpan && !nearBoundary {
				continue
			}

			var loc domain.Coordinates
			var mealMeters int
			if inSpan && seg.DurationSeconds > 0 {
				frac := slot.at.Sub(segStart).Seconds() / float64(seg.DurationSeconds)
				loc = spatial.Interpolate(seg.Start, seg.End, frac)
				mealMeters = segStartMeters + int(float64(segEndMeters-segStartMeters)*frac)
			} else {
				loc = seg.Start
				mealMeters = segStartMeters
			}

			suppressed := withinRestWindow(slot.at, rests)
			var duration *time.Duration
			if !suppressed {
				d := slot.kind.FixedDuration()
				duration = &d
			}

			locality := s.lookupLocality(ctx, loc)
			options := s.findRestaurantOptions(ctx, loc)

			meals = append(meals, domain.MealStop{
				Kind:                     slot.kind,
				Day:                      slot.day,
				TargetAt:                 slot.at,
				Location:                 loc,
				CumulativeDistanceMeters: mealMeters,
				DistanceFromPrevMeters:   mealMeters - lastStopMeters,
				SuppressedDuration:       suppressed,
				Duration:                 duration,
				Locality:                 locality,
				Restaurants:              options,
			})
			consumed[key] = struct{}{}
			lastStopMeters = mealMeters
		}

		now = segEnd
		distMeters = segEndMeters
	}

	sort.SliceStable(meals, func(i, j int) bool {
		if meals[i].Day != meals[j].Day {
			return meals[i].Day < meals[j].Day
		}
		return meals[i].TargetAt.Before(meals[j].TargetAt)
	})

	return meals, nil
}

// buildMealSlots pre-generates one slot per meal kind for every calendar day
// the trip could span, sorted chronologically. Independent of geometry.
func buildMealSlots(departAt time.Time, totalDriving time.Duration, targets MealTargets) []mealTarget {
	days := int(totalDriving/(24*time.Hour)) + mealBufferDays
	slots := make([]mealTarget, 0, days*3)
	for d := 0; d < days; d++ {
		date := departAt.AddDate(0, 0, d)
		slots = append(slots,
			mealTarget{at: targets.Breakfast.On(date), kind: domain.MealBreakfast, day: d + 1},
			mealTarget{at: targets.Lunch.On(date), kind: domain.MealLunch, day: d + 1},
			mealTarget{at: targets.Dinner.On(date), kind: domain.MealDinner, day: d + 1},
		)
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].at.Before(slots[j].at) })
	return slots
}

// withinRestWindow reports whether ts falls in [arrival, resume) of any
// non-final rest event.
func withinRestWindow(ts time.Time, rests []domain.RestStop) bool {
	for _, r := range rests {
		if r.IsFinalDestination || r.ResumeAt == nil {
			continue
		}
		if !ts.Before(r.ArrivalAt) && ts.Before(*r.ResumeAt) {
			return true
		}
	}
	return false
}

func (s *MealScheduler) lookupLocality(ctx context.Context, at domain.Coordinates) string {
	info, err := s.Places.ReverseGeocode(ctx, at)
	if err != nil {
		log.Printf("meal schedule: reverse geocode at %s failed: %v", at.Key(), err)
		return ""
	}
	if info.Locality != "" {
		return info.Locality
	}
	return info.State
}

// findRestaurantOptions runs the cascading search until at least the option
// limit is reached or all strategies are exhausted, then pads any shortfall
// with placeholders rather than failing.
func (s *MealScheduler) findRestaurantOptions(ctx context.Context, at domain.Coordinates) []domain.Restaurant {
	options := make([]domain.Restaurant, 0, restaurantOptionLimit)
	seen := make(map[string]struct{})

	for _, strat := range restaurantStrategies {
		if len(options) >= restaurantOptionLimit {
			break
		}

		found, err := s.Places.FindRestaurants(ctx, at, strat.radiusMeters, strat.placeType, strat.keyword)
		if err != nil {
			log.Printf("meal schedule: restaurant search (type=%s radius=%dm) failed: %v", strat.placeType, strat.radiusMeters, err)
			continue
		}

		valid := make([]domain.Restaurant, 0, len(found))
		for _, r := range found {
			r.DistanceFromRouteKm = spatial.HaversineMeters(at, r.Location) / 1000
			if r.DistanceFromRouteKm <= float64(strat.radiusMeters)/1000 {
				valid = append(valid, r)
			}
		}

		sort.SliceStable(valid, func(i, j int) bool {
			if valid[i].Rating != valid[j].Rating {
				return valid[i].Rating > valid[j].Rating
			}
			return valid[i].DistanceFromRouteKm < valid[j].DistanceFromRouteKm
		})

		for _, r := range valid {
			if len(options) >= restaurantOptionLimit {
				break
			}
			if _, dup := seen[r.Name]; dup {
				continue
			}
			seen[r.Name] = struct{}{}
			options = append(options, r)
		}
	}

	for len(options) < restaurantOptionLimit {
		options = append(options, domain.Restaurant{
			Name:        "No additional restaurants found nearby",
			Address:     "Plan to bring food or search manually",
			MapsURL:     fmt.Sprintf("https://www.google.com/maps?q=%f,%f", at.Lat, at.Lon),
			Placeholder: true,
		})
	}

	return options
}

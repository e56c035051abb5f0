package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"roadtrip-planner-service/internal/domain"
	"roadtrip-planner-service/internal/ports"
)

const (
	lodgingRadiusMeters     = 10000
	lodgingWideRadiusMeters = 20000
	lodgingMinRating        = 3.5
	lodgingOptionLimit      = 3
)

// TimeSimulator walks route segments tracking wall-clock time and elapsed
// same-day driving, and emits overnight rest stops whenever the driving
// window is exhausted, plus one terminal event at the destination.
type TimeSimulator struct {
	Places ports.PlacesProvider
}

// clockState is the per-invocation simulation state of the time walk.
type clockState struct {
	now                time.Time
	secondsDrivenToday int
	cumulativeMeters   int
	lastStopMeters     int
}

// Simulate returns the ordered rest calendar. The last event is always the
// terminal destination arrival with no resume fields.
func (s *TimeSimulator) Simulate(ctx context.Context, route *domain.Route, departAt time.Time, windowStart, windowEnd domain.TimeOfDay) ([]domain.RestStop, error) {
	if len(route.Segments) == 0 {
		return nil, errors.New("time simulate: route has no segments")
	}
	if !windowStart.Before(windowEnd) {
		return nil, fmt.Errorf("time simulate: driving window start %s must precede end %s", windowStart, windowEnd)
	}

	dailyBudgetSeconds := windowEnd.SecondsIntoDay() - windowStart.SecondsIntoDay()
	totalWithRests := time.Duration(route.TotalDurationSeconds) * time.Second

	st := clockState{now: departAt}
	rests := make([]domain.RestStop, 0, 2)

	for i, seg := range route.Segments {
		st.secondsDrivenToday += seg.DurationSeconds
		st.now = st.now.Add(time.Duration(seg.DurationSeconds) * time.Second)
		st.cumulativeMeters += seg.DistanceMeters

		isFinal := i == len(route.Segments)-1

		needRest := isFinal ||
			domain.SecondsIntoDayOf(st.now) >= windowEnd.SecondsIntoDay() ||
			st.secondsDrivenToday >= dailyBudgetSeconds

		if !needRest {
			continue
		}

		locality, hotels := s.lookupLodging(ctx, seg.End)

		stop := domain.RestStop{
			ArrivalAt:                st.now,
			CumulativeDistanceMeters: st.cumulativeMeters,
			DistanceFromPrevMeters:   st.cumulativeMeters - st.lastStopMeters,
			Locality:                 locality,
			Hotels:                   hotels,
		}

		if isFinal {
			stop.IsFinalDestination = true
			stop.TotalWithRests = totalWithRests
			rests = append(rests, stop)
			break
		}

		resume := windowStart.On(st.now.AddDate(0, 0, 1))
		restDuration := resume.Sub(st.now)
		totalWithRests += restDuration

		stop.ResumeAt = &resume
		stop.RestDuration = &restDuration
		stop.TotalWithRests = totalWithRests
		rests = append(rests, stop)

		st.lastStopMeters = st.cumulativeMeters
		st.now = resume
		st.secondsDrivenToday = 0
	}

	return rests, nil
}

// lookupLodging resolves the locality name and overnight options at a rest
// coordinate. Lookup failures degrade to empty results, never block.
func (s *TimeSimulator) lookupLodging(ctx context.Context, at domain.Coordinates) (string, []domain.Lodging) {
	var locality string
	if info, err := s.Places.ReverseGeocode(ctx, at); err == nil {
		locality = info.Locality
	} else {
		log.Printf("time simulate: reverse geocode at %s failed: %v", at.Key(), err)
	}

	// Widen the search when no locality resolves; the stop may be in open
	// country between towns.
	radius := lodgingRadiusMeters
	if locality == "" {
		radius = lodgingWideRadiusMeters
	}

	hotels, err := s.Places.FindLodging(ctx, at, radius, lodgingMinRating)
	if err != nil {
		log.Printf("time simulate: lodging lookup at %s failed: %v", at.Key(), err)
		return locality, nil
	}

	sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	if len(hotels) > lodgingOptionLimit {
		hotels = hotels[:lodgingOptionLimit]
	}
	return locality, hotels
}

package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, independent of any
// calendar date. Used for driving windows and meal targets.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "15:04" formatted strings.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// SecondsIntoDay returns the offset from midnight.
func (t TimeOfDay) SecondsIntoDay() int { return t.Hour*3600 + t.Minute*60 }

// On combines the time of day with the calendar date of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, ref.Location())
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.SecondsIntoDay() < other.SecondsIntoDay()
}

// SecondsIntoDayOf returns the wall-clock offset from midnight of an instant,
// for comparison against a TimeOfDay.
func SecondsIntoDayOf(ts time.Time) int {
	return ts.Hour()*3600 + ts.Minute()*60 + ts.Second()
}

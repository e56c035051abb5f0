package domain

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("06:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod.Hour != 6 || tod.Minute != 30 {
		t.Fatalf("parsed %+v, want 06:30", tod)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatalf("expected error for invalid hour")
	}
	if _, err := ParseTimeOfDay("breakfast"); err == nil {
		t.Fatalf("expected error for non-time input")
	}
}

func TestTimeOfDayOn(t *testing.T) {
	ref := time.Date(2026, 1, 15, 23, 45, 12, 0, time.UTC)
	got := TimeOfDay{Hour: 6, Minute: 15}.On(ref)

	want := time.Date(2026, 1, 15, 6, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("On = %v, want %v", got, want)
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	early := TimeOfDay{Hour: 6}
	late := TimeOfDay{Hour: 19}

	if !early.Before(late) {
		t.Fatalf("06:00 should be before 19:00")
	}
	if late.Before(early) {
		t.Fatalf("19:00 should not be before 06:00")
	}
	if early.Before(early) {
		t.Fatalf("a time is not before itself")
	}
}

func TestSecondsIntoDayOf(t *testing.T) {
	ts := time.Date(2026, 1, 1, 19, 0, 30, 0, time.UTC)
	if got := SecondsIntoDayOf(ts); got != 19*3600+30 {
		t.Fatalf("seconds into day = %d, want %d", got, 19*3600+30)
	}
}

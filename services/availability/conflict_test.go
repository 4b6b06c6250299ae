package availability

import (
	"testing"
	"time"

	"tutorhive/models"
)

func slotAt(hour, minute int) models.Slot {
	return models.Slot{Date: "2026-03-02", Hour: hour, Minute: minute}
}

func TestIsBooked_HalfOpenBoundaries(t *testing.T) {
	loc := time.UTC
	booked := []models.BookedInterval{
		{
			Start: time.Date(2026, 3, 2, 10, 0, 0, 0, loc),
			End:   time.Date(2026, 3, 2, 11, 0, 0, 0, loc),
		},
	}

	cases := []struct {
		name string
		slot models.Slot
		want bool
	}{
		{"before interval", slotAt(9, 30), false},
		{"at interval start", slotAt(10, 0), true},
		{"inside interval", slotAt(10, 30), true},
		{"at interval end", slotAt(11, 0), false}, // booking ending at 11:00 does not block 11:00
		{"after interval", slotAt(11, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBooked(tc.slot, booked, loc); got != tc.want {
				t.Errorf("IsBooked(%s) = %v, want %v", tc.slot.Label(), got, tc.want)
			}
		})
	}
}

func TestIsBooked_NoIntervals(t *testing.T) {
	if IsBooked(slotAt(10, 0), nil, time.UTC) {
		t.Fatal("slot with no booked intervals must not be booked")
	}
}

func TestIsBooked_UnresolvableSlotFailsClosed(t *testing.T) {
	bad := models.Slot{Date: "not-a-date", Hour: 10}
	if !IsBooked(bad, nil, time.UTC) {
		t.Fatal("a slot that cannot be placed in time must be treated as booked")
	}
}

func TestIsPast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)

	if !IsPast(slotAt(9, 30), now, loc) {
		t.Error("09:30 must be past at 10:00")
	}
	// Strictly earlier: a slot starting exactly now is not past.
	if IsPast(slotAt(10, 0), now, loc) {
		t.Error("10:00 must not be past at 10:00")
	}
	if IsPast(slotAt(10, 30), now, loc) {
		t.Error("10:30 must not be past at 10:00")
	}
}

func TestWithinHorizon(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", now, true},
		{"earlier today", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"horizon edge", now.AddDate(0, 0, 90), true},
		{"past horizon", now.AddDate(0, 0, 91), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinHorizon(tc.date, now, 90); got != tc.want {
				t.Errorf("WithinHorizon(%s) = %v, want %v", tc.date.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

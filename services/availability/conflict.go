package availability

import (
	"time"

	"tutorhive/models"
)

// IsBooked reports whether the slot's nominal instant falls within any booked
// interval. Intervals are half-open [start, end), so a booking ending at
// 11:00 does not block the 11:00 slot and back-to-back sessions abut without
// conflict. A slot whose instant cannot be resolved counts as booked: the
// filter fails toward disabling a slot it cannot confirm is free.
func IsBooked(slot models.Slot, booked []models.BookedInterval, loc *time.Location) bool {
	t, err := slot.Time(loc)
	if err != nil {
		return true
	}
	for _, b := range booked {
		if !t.Before(b.Start) && t.Before(b.End) {
			return true
		}
	}
	return false
}

// IsPast reports whether the slot's nominal instant is strictly earlier than
// now.
func IsPast(slot models.Slot, now time.Time, loc *time.Location) bool {
	t, err := slot.Time(loc)
	if err != nil {
		return true
	}
	return t.Before(now)
}

// WithinHorizon reports whether a calendar date is selectable: not before
// today and no further ahead than horizonDays. Both bounds are evaluated as
// whole days in the supplied location.
func WithinHorizon(date, now time.Time, horizonDays int) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, horizonDays))
}

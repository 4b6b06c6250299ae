package models

import (
	"fmt"
	"time"
)

// Slot is one bookable instant derived from a TimeWindow: a date plus an
// hour:minute at the fixed 30-minute granularity. Slots are pure computed
// data, regenerated on every date or schedule change and never mutated.
type Slot struct {
	Date   string `json:"date"` // "YYYY-MM-DD"
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// MinuteOfDay returns the slot's start as minutes from midnight.
func (s Slot) MinuteOfDay() int {
	return s.Hour*60 + s.Minute
}

// Time resolves the slot's nominal instant in the given location.
func (s Slot) Time(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date %q: %w", s.Date, err)
	}
	return day.Add(time.Duration(s.MinuteOfDay()) * time.Minute), nil
}

// Label renders the slot's start as a 12-hour clock label.
func (s Slot) Label() string {
	return FormatClock(s.MinuteOfDay())
}

// BookedInterval is an existing confirmed or pending session on the tutor's
// calendar, as absolute timestamps. Read-only to the availability engine.
type BookedInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// AvailabilityWindow is an ordered run of contiguous slots with no gap
// between consecutive entries. It is purely a grouping artifact, recomputed
// from the slot list on every render.
type AvailabilityWindow struct {
	Slots []Slot `json:"slots"`
	Label string `json:"label"` // e.g. "9:00 AM - 12:00 PM"
}

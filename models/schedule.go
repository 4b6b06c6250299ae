package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays lists the seven canonical day keys of a WeeklySchedule, in order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// TimeWindow is one recurring availability block on a weekday, expressed as
// wall-clock times ("HH:MM") in the tutor's local civil time. Invariant:
// Start < End. Windows are ephemeral; they only live inside a WeeklySchedule.
type TimeWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklySchedule maps a lowercase weekday name to its ordered availability
// windows. Windows for a day should not overlap; the engine tolerates
// overlaps but never deduplicates the stored windows.
type WeeklySchedule map[string][]TimeWindow

// NewWeeklySchedule returns a schedule with all seven days present and empty.
func NewWeeklySchedule() WeeklySchedule {
	ws := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		ws[day] = []TimeWindow{}
	}
	return ws
}

// WeekdayKey returns the schedule key for a date, e.g. "monday".
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as a 12-hour label, e.g. "1:30 PM".
func FormatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

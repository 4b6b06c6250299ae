package availability

import (
	"sort"
	"time"

	"tutorhive/models"
)

// StepMinutes is the fixed slot granularity. It is not configurable per tutor.
const StepMinutes = 30

// Step is StepMinutes as a duration.
const Step = StepMinutes * time.Minute

// MinSessionMinutes is the minimum bookable session length.
const MinSessionMinutes = 30

// ResolveSlots expands a tutor's recurring windows for the weekday of date
// into concrete 30-minute slots, sorted by time of day. A slot is emitted
// only while its nominal start is strictly before the window end, so a
// 09:00-10:15 window yields 09:00, 09:30 and 10:00. Windows that fail to
// parse or have start >= end contribute nothing. Out-of-order and overlapping
// windows are tolerated; duplicate instants are collapsed after sorting.
//
// Pure function: no I/O, deterministic on input.
func ResolveSlots(sched models.WeeklySchedule, date time.Time) []models.Slot {
	dateStr := date.Format("2006-01-02")
	windows := sched[models.WeekdayKey(date)]

	var slots []models.Slot
	for _, w := range windows {
		startMin, err := models.ParseClock(w.Start)
		if err != nil {
			continue
		}
		endMin, err := models.ParseClock(w.End)
		if err != nil {
			continue
		}
		for m := startMin; m < endMin; m += StepMinutes {
			slots = append(slots, models.Slot{Date: dateStr, Hour: m / 60, Minute: m % 60})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].MinuteOfDay() < slots[j].MinuteOfDay()
	})

	// Collapse duplicates produced by overlapping windows.
	deduped := slots[:0]
	for i, s := range slots {
		if i > 0 && s.MinuteOfDay() == slots[i-1].MinuteOfDay() {
			continue
		}
		deduped = append(deduped, s)
	}
	return deduped
}

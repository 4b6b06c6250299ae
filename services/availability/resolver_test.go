package availability

import (
	"testing"
	"time"

	"tutorhive/models"
)

func mondaySchedule(windows ...models.TimeWindow) models.WeeklySchedule {
	ws := models.NewWeeklySchedule()
	ws["monday"] = windows
	return ws
}

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func minutes(slots []models.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.MinuteOfDay()
	}
	return out
}

func TestResolveSlots_Discretization(t *testing.T) {
	sched := mondaySchedule(models.TimeWindow{Start: "09:00", End: "10:15"})
	slots := ResolveSlots(sched, monday)

	// 10:30 would start at/after the window end, so only three slots remain.
	want := []int{9 * 60, 9*60 + 30, 10 * 60}
	got := minutes(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected minute %d, got %d", i, want[i], got[i])
		}
	}
	if slots[0].Date != "2026-03-02" {
		t.Errorf("expected date 2026-03-02, got %s", slots[0].Date)
	}
}

func TestResolveSlots_EmptyDay(t *testing.T) {
	sched := models.NewWeeklySchedule()
	if slots := ResolveSlots(sched, monday); len(slots) != 0 {
		t.Fatalf("expected no slots for an unconfigured day, got %d", len(slots))
	}
	// A weekday missing from the map entirely behaves the same.
	if slots := ResolveSlots(models.WeeklySchedule{}, monday); len(slots) != 0 {
		t.Fatalf("expected no slots for a missing day key, got %d", len(slots))
	}
}

func TestResolveSlots_ZeroLengthWindow(t *testing.T) {
	sched := mondaySchedule(models.TimeWindow{Start: "09:00", End: "09:00"})
	if slots := ResolveSlots(sched, monday); len(slots) != 0 {
		t.Fatalf("expected zero-length window to yield no slots, got %d", len(slots))
	}
}

func TestResolveSlots_InvertedWindowTolerated(t *testing.T) {
	sched := mondaySchedule(models.TimeWindow{Start: "12:00", End: "09:00"})
	if slots := ResolveSlots(sched, monday); len(slots) != 0 {
		t.Fatalf("expected inverted window to yield no slots, got %d", len(slots))
	}
}

func TestResolveSlots_SortsOutOfOrderWindows(t *testing.T) {
	sched := mondaySchedule(
		models.TimeWindow{Start: "14:00", End: "15:00"},
		models.TimeWindow{Start: "09:00", End: "10:00"},
	)
	got := minutes(ResolveSlots(sched, monday))
	want := []int{9 * 60, 9*60 + 30, 14 * 60, 14*60 + 30}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: expected minute %d, got %d", i, want[i], got[i])
		}
	}
}

func TestResolveSlots_OverlappingWindowsDeduped(t *testing.T) {
	sched := mondaySchedule(
		models.TimeWindow{Start: "09:00", End: "10:00"},
		models.TimeWindow{Start: "09:30", End: "10:30"},
	)
	got := minutes(ResolveSlots(sched, monday))
	want := []int{9 * 60, 9*60 + 30, 10 * 60}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(got), got)
	}
}

func TestResolveSlots_Deterministic(t *testing.T) {
	sched := mondaySchedule(
		models.TimeWindow{Start: "09:00", End: "12:00"},
		models.TimeWindow{Start: "14:00", End: "17:00"},
	)
	first := ResolveSlots(sched, monday)
	second := ResolveSlots(sched, monday)
	if len(first) != len(second) {
		t.Fatalf("expected identical runs, got %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResolveSlots_MalformedWindowSkipped(t *testing.T) {
	sched := mondaySchedule(
		models.TimeWindow{Start: "nonsense", End: "10:00"},
		models.TimeWindow{Start: "11:00", End: "12:00"},
	)
	got := minutes(ResolveSlots(sched, monday))
	want := []int{11 * 60, 11*60 + 30}
	if len(got) != len(want) {
		t.Fatalf("expected malformed window to be skipped, got %v", got)
	}
}

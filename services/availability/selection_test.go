package availability

import (
	"errors"
	"testing"
	"time"

	"tutorhive/models"
)

// testDay builds a Day for 2026-03-02 with windows 09:00-12:00 and
// 14:00-17:00 (the two-window shape from the schedule examples).
func testDay(booked ...models.BookedInterval) Day {
	sched := models.NewWeeklySchedule()
	sched["monday"] = []models.TimeWindow{
		{Start: "09:00", End: "12:00"},
		{Start: "14:00", End: "17:00"},
	}
	return Day{
		Date:   "2026-03-02",
		Loc:    time.UTC,
		Slots:  ResolveSlots(sched, monday),
		Booked: booked,
	}
}

var earlyMorning = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func mustClick(t *testing.T, sel Selection, day Day, slot models.Slot, now time.Time) Selection {
	t.Helper()
	next, err := sel.Click(day, slot, now)
	if err != nil {
		t.Fatalf("unexpected rejection clicking %s: %v", slot.Label(), err)
	}
	return next
}

func wantRejection(t *testing.T, sel Selection, day Day, slot models.Slot, now time.Time, code string) Selection {
	t.Helper()
	next, err := sel.Click(day, slot, now)
	var selErr *SelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("expected a SelectionError clicking %s, got %v", slot.Label(), err)
	}
	if selErr.Code != code {
		t.Fatalf("expected rejection code %s, got %s (%s)", code, selErr.Code, selErr.Message)
	}
	return next
}

func TestClick_StartThenEnd(t *testing.T) {
	day := testDay()
	sel := NewSelection(day.Date)

	sel = mustClick(t, sel, day, slotAt(10, 0), earlyMorning)
	if sel.Phase != PhaseStartOnly || sel.Start != slotAt(10, 0) {
		t.Fatalf("expected start-only at 10:00, got %+v", sel)
	}

	sel = mustClick(t, sel, day, slotAt(11, 0), earlyMorning)
	if sel.Phase != PhaseRange {
		t.Fatalf("expected a full range, got %+v", sel)
	}
	if sel.Start != slotAt(10, 0) || sel.End != slotAt(11, 0) {
		t.Fatalf("unexpected range %+v", sel)
	}
}

func TestClick_MinimumDuration(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)

	// Exactly 30 minutes is accepted.
	accepted := mustClick(t, sel, day, slotAt(10, 30), earlyMorning)
	if accepted.Phase != PhaseRange {
		t.Fatalf("expected 30-minute range to be accepted, got %+v", accepted)
	}

	// A 15-minute end (off-grid input can arrive straight from the wire)
	// falls short of the minimum and leaves the selection unchanged.
	after := wantRejection(t, sel, day, slotAt(10, 15), earlyMorning, CodeTooShort)
	if after != sel {
		t.Fatalf("rejection must not change the selection: %+v", after)
	}
}

func TestClick_EndNotAfterStart(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)

	// Earlier end is rejected and the selection is left unchanged.
	after := wantRejection(t, sel, day, slotAt(9, 0), earlyMorning, CodeEndBeforeStart)
	if after != sel {
		t.Fatalf("rejection must not change the selection: %+v", after)
	}
}

func TestClick_RangeCannotCrossGap(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(11, 30), earlyMorning)

	// 11:30 -> 14:30 spans the 12:00-14:00 gap.
	after := wantRejection(t, sel, day, slotAt(14, 30), earlyMorning, CodeSpansGap)
	if after.Phase != PhaseStartOnly || after.Start != slotAt(11, 30) {
		t.Fatalf("expected selection to keep its start after a gap rejection, got %+v", after)
	}
}

func TestClick_RangeCannotCrossBooking(t *testing.T) {
	day := testDay(models.BookedInterval{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	})
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(9, 0), earlyMorning)
	wantRejection(t, sel, day, slotAt(11, 30), earlyMorning, CodeSpansGap)

	// A range ending right at the booking start stays clear of it.
	accepted := mustClick(t, sel, day, slotAt(10, 0), earlyMorning)
	if accepted.Phase != PhaseRange {
		t.Fatalf("expected 09:00-10:00 to be accepted, got %+v", accepted)
	}
}

func TestClick_BookedStartRejected(t *testing.T) {
	day := testDay(models.BookedInterval{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	})
	wantRejection(t, NewSelection(day.Date), day, slotAt(10, 30), earlyMorning, CodeSlotUnavailable)
}

func TestClick_PastStartRejected(t *testing.T) {
	day := testDay()
	noon := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	wantRejection(t, NewSelection(day.Date), day, slotAt(9, 0), noon, CodeSlotUnavailable)
}

func TestClick_DeselectIsIdempotent(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)

	// Clicking the selected start clears everything.
	sel = mustClick(t, sel, day, slotAt(10, 0), earlyMorning)
	if sel.Phase != PhaseEmpty {
		t.Fatalf("expected empty selection after deselect, got %+v", sel)
	}

	// Clicking it again re-selects it as start only, with no leftover end.
	sel = mustClick(t, sel, day, slotAt(10, 0), earlyMorning)
	if sel.Phase != PhaseStartOnly || sel.Start != slotAt(10, 0) {
		t.Fatalf("expected a fresh start-only selection, got %+v", sel)
	}
}

func TestClick_EndClickClearsOnlyEnd(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)
	sel = mustClick(t, sel, day, slotAt(11, 0), earlyMorning)

	sel = mustClick(t, sel, day, slotAt(11, 0), earlyMorning)
	if sel.Phase != PhaseStartOnly || sel.Start != slotAt(10, 0) {
		t.Fatalf("expected start-only after clearing end, got %+v", sel)
	}
}

func TestClick_FullRangeRestartsOnOtherSlot(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)
	sel = mustClick(t, sel, day, slotAt(11, 0), earlyMorning)

	sel = mustClick(t, sel, day, slotAt(14, 0), earlyMorning)
	if sel.Phase != PhaseStartOnly || sel.Start != slotAt(14, 0) {
		t.Fatalf("expected restart at 14:00, got %+v", sel)
	}
}

func TestClick_StartExpiredWhileChoosingEnd(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(9, 0), earlyMorning)

	// The clock crosses the start slot before the end is chosen.
	later := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	after := wantRejection(t, sel, day, slotAt(10, 0), later, CodeStartExpired)
	if after.Phase != PhaseEmpty {
		t.Fatalf("expected selection to reset after start expiry, got %+v", after)
	}
}

func TestClick_WrongDateRejected(t *testing.T) {
	day := testDay()
	sel := NewSelection(day.Date)
	foreign := models.Slot{Date: "2026-03-03", Hour: 10}
	wantRejection(t, sel, day, foreign, earlyMorning, CodeWrongDate)
}

func TestNewSelection_ResetsOnDateChange(t *testing.T) {
	day := testDay()
	sel := mustClick(t, NewSelection(day.Date), day, slotAt(10, 0), earlyMorning)
	sel = mustClick(t, sel, day, slotAt(11, 0), earlyMorning)

	// Switching the date drops both start and end.
	next := NewSelection("2026-03-03")
	if next.Phase != PhaseEmpty || next.Date != "2026-03-03" {
		t.Fatalf("expected a clean selection for the new date, got %+v", next)
	}
	_ = sel
}

func TestSelectableSlots_FiltersBookedAndPast(t *testing.T) {
	day := testDay(models.BookedInterval{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	})
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	selectable := day.SelectableSlots(now)
	for _, s := range selectable {
		if s.MinuteOfDay() < 9*60+30 {
			t.Errorf("past slot %s leaked through", s.Label())
		}
		m := s.MinuteOfDay()
		if m >= 10*60 && m < 11*60 {
			t.Errorf("booked slot %s leaked through", s.Label())
		}
	}
	// 09:30, 11:00, 11:30 from the morning window, all six afternoon slots.
	if len(selectable) != 9 {
		t.Fatalf("expected 9 selectable slots, got %d", len(selectable))
	}
}

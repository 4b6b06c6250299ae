package availability

import (
	"fmt"
	"time"

	"tutorhive/models"
)

// Phase tags a Selection. The three variants replace the freeform
// start/end boolean pairs of a click handler with one explicit state machine.
type Phase int

const (
	// PhaseEmpty means no slot is selected.
	PhaseEmpty Phase = iota
	// PhaseStartOnly means a start slot is held and an end slot is awaited.
	PhaseStartOnly
	// PhaseRange means a validated start/end pair is held.
	PhaseRange
)

// Selection is the user's in-progress start/end pick for one calendar date.
// Invariant while Phase == PhaseRange: End is strictly after Start and every
// 30-minute tick in [Start, End) was available and unbooked when accepted.
type Selection struct {
	Date  string      `json:"date"`
	Phase Phase       `json:"phase"`
	Start models.Slot `json:"start"`
	End   models.Slot `json:"end"`
}

// NewSelection returns an empty selection for a date. Changing the selected
// date always goes through here, which unconditionally discards any held
// start/end pair.
func NewSelection(date string) Selection {
	return Selection{Date: date, Phase: PhaseEmpty}
}

// SelectionError is a recoverable, user-facing validation rejection. It is
// surfaced as an inline message and never escalates beyond the click that
// caused it.
type SelectionError struct {
	Code    string
	Message string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func rejection(code, msg string) *SelectionError {
	return &SelectionError{Code: code, Message: msg}
}

// NewRejection builds a user-facing validation rejection.
func NewRejection(code, msg string) *SelectionError {
	return rejection(code, msg)
}

// Rejection codes.
const (
	CodeSlotUnavailable = "slotUnavailable"
	CodeEndBeforeStart  = "endBeforeStart"
	CodeTooShort        = "tooShort"
	CodeSpansGap        = "spansUnavailable"
	CodeStartExpired    = "startExpired"
	CodeWrongDate       = "wrongDate"
	CodeDateUnavailable = "dateUnavailable"
)

// Day bundles the already-resolved slot data a click is validated against:
// the resolved slot list for the date plus the booked intervals fetched for
// it. It is an explicit context object; the engine never reads ambient state.
type Day struct {
	Date   string
	Loc    *time.Location
	Slots  []models.Slot
	Booked []models.BookedInterval
}

func (d Day) hasSlot(minuteOfDay int) bool {
	for _, s := range d.Slots {
		if s.MinuteOfDay() == minuteOfDay {
			return true
		}
	}
	return false
}

// checkSelectable verifies a slot exists in the resolved list and is neither
// booked nor past.
func (d Day) checkSelectable(slot models.Slot, now time.Time) *SelectionError {
	if !d.hasSlot(slot.MinuteOfDay()) {
		return rejection(CodeSlotUnavailable, "That time is not available.")
	}
	if IsPast(slot, now, d.Loc) {
		return rejection(CodeSlotUnavailable, "That time has already passed.")
	}
	if IsBooked(slot, d.Booked, d.Loc) {
		return rejection(CodeSlotUnavailable, "That time is already booked.")
	}
	return nil
}

// SelectableSlots filters the day's resolved slots down to those that are
// neither booked nor past.
func (d Day) SelectableSlots(now time.Time) []models.Slot {
	var out []models.Slot
	for _, s := range d.Slots {
		if IsPast(s, now, d.Loc) || IsBooked(s, d.Booked, d.Loc) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Click applies one slot click to the selection and returns the next state.
// It is the single transition function over the Empty/StartOnly/Range
// variants. Every rejection returns a *SelectionError and leaves the
// selection unchanged, with one exception: if the held start slot has gone
// past or been booked while the user deliberated, the selection resets to
// empty so the next click starts fresh against current data.
func (s Selection) Click(day Day, slot models.Slot, now time.Time) (Selection, error) {
	if slot.Date != s.Date || day.Date != s.Date {
		return s, rejection(CodeWrongDate, "That slot belongs to a different date.")
	}

	switch s.Phase {
	case PhaseEmpty:
		if rej := day.checkSelectable(slot, now); rej != nil {
			return s, rej
		}
		return Selection{Date: s.Date, Phase: PhaseStartOnly, Start: slot}, nil

	case PhaseStartOnly:
		if slot == s.Start {
			// Deselect: clears both start and end.
			return NewSelection(s.Date), nil
		}
		return s.chooseEnd(day, slot, now)

	case PhaseRange:
		if slot == s.Start {
			return NewSelection(s.Date), nil
		}
		if slot == s.End {
			// Back to start-only; the held start stays.
			return Selection{Date: s.Date, Phase: PhaseStartOnly, Start: s.Start}, nil
		}
		// Any other click restarts selection at the clicked slot.
		if rej := day.checkSelectable(slot, now); rej != nil {
			return s, rej
		}
		return Selection{Date: s.Date, Phase: PhaseStartOnly, Start: slot}, nil
	}

	return s, rejection(CodeSlotUnavailable, "Selection is in an unknown state.")
}

// ValidateRange re-checks a held start/end pair against current day data.
// Used at submission time, after booked intervals may have been refreshed
// since the range was accepted.
func ValidateRange(day Day, start, end models.Slot, now time.Time) error {
	sel := Selection{Date: day.Date, Phase: PhaseStartOnly, Start: start}
	if _, err := sel.chooseEnd(day, end, now); err != nil {
		return err
	}
	return nil
}

// chooseEnd validates a candidate end slot against the held start.
func (s Selection) chooseEnd(day Day, end models.Slot, now time.Time) (Selection, error) {
	startMin := s.Start.MinuteOfDay()
	endMin := end.MinuteOfDay()

	if endMin <= startMin {
		return s, rejection(CodeEndBeforeStart, "End time must be after the start time.")
	}
	if endMin-startMin < MinSessionMinutes {
		return s, rejection(CodeTooShort, fmt.Sprintf("Sessions must be at least %d minutes.", MinSessionMinutes))
	}

	// Re-validate start liveness: the clock may have crossed the start slot's
	// instant, or a refresh may have marked it booked, while the end slot was
	// being chosen. A dead start resets the whole selection.
	if IsPast(s.Start, now, day.Loc) || IsBooked(s.Start, day.Booked, day.Loc) {
		return NewSelection(s.Date), rejection(CodeStartExpired, "Your selected start time is no longer available. Please pick again.")
	}

	// Continuity: every tick from start up to (excluding) end must exist in
	// the resolved slot list and be unbooked, otherwise the range crosses a
	// gap or a conflicting booking.
	for m := startMin; m < endMin; m += StepMinutes {
		tick := models.Slot{Date: s.Date, Hour: m / 60, Minute: m % 60}
		if !day.hasSlot(m) || IsBooked(tick, day.Booked, day.Loc) {
			return s, rejection(CodeSpansGap, "That range spans unavailable time.")
		}
	}

	return Selection{Date: s.Date, Phase: PhaseRange, Start: s.Start, End: end}, nil
}

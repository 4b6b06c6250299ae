package schedule

import (
	"errors"
	"testing"

	"tutorhive/models"
)

func TestValidate_NormalizesMissingDays(t *testing.T) {
	sched := models.WeeklySchedule{
		"monday": {{Start: "09:00", End: "12:00"}},
	}
	normalized, err := Validate(sched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(normalized) != 7 {
		t.Fatalf("expected all seven days, got %d", len(normalized))
	}
	if len(normalized["monday"]) != 1 {
		t.Errorf("monday windows lost: %v", normalized["monday"])
	}
	if len(normalized["tuesday"]) != 0 {
		t.Errorf("expected empty tuesday, got %v", normalized["tuesday"])
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		sched models.WeeklySchedule
	}{
		{"unknown weekday", models.WeeklySchedule{"funday": {}}},
		{"bad clock", models.WeeklySchedule{"monday": {{Start: "9am", End: "10:00"}}}},
		{"out of range", models.WeeklySchedule{"monday": {{Start: "09:00", End: "24:30"}}}},
		{"inverted window", models.WeeklySchedule{"monday": {{Start: "12:00", End: "09:00"}}}},
		{"zero length window", models.WeeklySchedule{"monday": {{Start: "09:00", End: "09:00"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Validate(tc.sched); !errors.Is(err, ErrInvalidSchedule) {
				t.Fatalf("expected ErrInvalidSchedule, got %v", err)
			}
		})
	}
}

func TestValidate_OverlapsTolerated(t *testing.T) {
	sched := models.WeeklySchedule{
		"monday": {
			{Start: "09:00", End: "11:00"},
			{Start: "10:00", End: "12:00"},
		},
	}
	normalized, err := Validate(sched)
	if err != nil {
		t.Fatalf("overlapping windows must be accepted: %v", err)
	}
	// The stored windows are never deduplicated.
	if len(normalized["monday"]) != 2 {
		t.Fatalf("expected both windows kept, got %v", normalized["monday"])
	}
}

package schedule

import (
	"context"
	"errors"
	"fmt"

	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/utils"

	"go.uber.org/zap"
)

// ErrInvalidSchedule marks validation failures on a schedule save.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ScheduleService manages a tutor's recurring weekly availability.
type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, tutorID string) (models.WeeklySchedule, int, error)
	SaveWeeklySchedule(ctx context.Context, tutorID string, sched models.WeeklySchedule) (models.WeeklySchedule, error)
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo tutorRepo.TutorRepository
}

func (s *DefaultScheduleService) GetWeeklySchedule(ctx context.Context, tutorID string) (models.WeeklySchedule, int, error) {
	return s.Repo.GetSchedule(ctx, tutorID)
}

// SaveWeeklySchedule validates and persists the schedule wholesale. Windows
// must parse as HH:MM with start < end. Overlapping windows on the same day
// are accepted; deduplicating them is the owner's concern, not the engine's.
func (s *DefaultScheduleService) SaveWeeklySchedule(ctx context.Context, tutorID string, sched models.WeeklySchedule) (models.WeeklySchedule, error) {
	normalized, err := Validate(sched)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSchedule(ctx, tutorID, normalized); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("schedule saved",
		zap.String("tutorID", tutorID))
	return normalized, nil
}

// Validate checks a schedule and returns a normalized copy with all seven
// weekday keys present.
func Validate(sched models.WeeklySchedule) (models.WeeklySchedule, error) {
	known := make(map[string]bool, len(models.Weekdays))
	for _, day := range models.Weekdays {
		known[day] = true
	}
	for day := range sched {
		if !known[day] {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
	}

	normalized := models.NewWeeklySchedule()
	for day, windows := range sched {
		for _, w := range windows {
			start, err := models.ParseClock(w.Start)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, day, err)
			}
			end, err := models.ParseClock(w.End)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSchedule, day, err)
			}
			if start >= end {
				return nil, fmt.Errorf("%w: %s: window %s-%s must start before it ends", ErrInvalidSchedule, day, w.Start, w.End)
			}
		}
		normalized[day] = append([]models.TimeWindow{}, windows...)
	}
	return normalized, nil
}

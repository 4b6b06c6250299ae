package tutorRepo

import (
	"context"

	"tutorhive/models"
)

// TutorRepository defines persistence operations for tutors and their
// weekly schedules.
type TutorRepository interface {
	Create(ctx context.Context, t models.Tutor) error
	GetByID(ctx context.Context, id string) (*models.Tutor, error)
	// GetSchedule returns the tutor's weekly schedule and its revision.
	// A tutor who never saved a schedule gets an empty one (all seven days
	// present, no windows).
	GetSchedule(ctx context.Context, id string) (models.WeeklySchedule, int, error)
	// UpdateSchedule replaces the schedule wholesale and bumps its revision.
	UpdateSchedule(ctx context.Context, id string, sched models.WeeklySchedule) error
}

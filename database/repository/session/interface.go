package sessionRepo

import (
	"context"
	"time"

	"tutorhive/models"
)

// SessionRepository defines persistence operations for session requests.
// Create performs the authoritative conflict check: the client-side filter
// only prevents obviously-invalid selections, this is the safeguard against
// double-booking.
type SessionRepository interface {
	Create(ctx context.Context, req models.SessionRequest) error
	GetByID(ctx context.Context, id string) (*models.SessionRequest, error)
	// ListIntervals returns the calendar footprint of every pending or
	// confirmed session for the tutor on the given date, sorted by start.
	ListIntervals(ctx context.Context, tutorID, date string, loc *time.Location) ([]models.BookedInterval, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentID(ctx context.Context, id, paymentID string) error
}

package booking

import (
	"context"

	notificationRepo "tutorhive/database/repository/notification"
	sessionRepo "tutorhive/database/repository/session"
	tutorRepo "tutorhive/database/repository/tutor"
	"tutorhive/models"
	"tutorhive/services/availability"
	"tutorhive/services/tasks"
)

// DayAvailability is the render model for one selected date: the resolved
// slots grouped into display windows, the selectable subset, and the current
// selection state.
type DayAvailability struct {
	Date        string                      `json:"date"`
	Windows     []models.AvailabilityWindow `json:"windows"`
	Selectable  []models.Slot               `json:"selectable"`
	Selection   availability.Selection      `json:"selection"`
	Unconfirmed bool                        `json:"unconfirmed,omitempty"` // booked-interval data could not be confirmed
}

// ConfirmResult is handed back once a validated range is submitted.
type ConfirmResult struct {
	Session             models.SessionRequest `json:"session"`
	PaymentClientSecret string                `json:"paymentClientSecret,omitempty"`
}

// BookingFlowService drives a user's booking flow against one tutor: an
// explicit selection session created up front, one state transition per slot
// click, and a terminal confirm that persists the session request.
type BookingFlowService interface {
	StartSession(ctx context.Context, userID, tutorID string) (*SelectionSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*DayAvailability, error)
	ClickSlot(ctx context.Context, sessionID string, slot models.Slot) (*DayAvailability, error)
	Windows(ctx context.Context, sessionID string) (*DayAvailability, error)
	Confirm(ctx context.Context, sessionID, subject, message string) (*ConfirmResult, error)
	CancelSession(ctx context.Context, sessionID string) error
	// RefreshIntervals re-fetches booked intervals for the session's current
	// date. A result for a date the session no longer points at is discarded.
	RefreshIntervals(ctx context.Context, sessionID string) error
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	TutorRepo    tutorRepo.TutorRepository
	SessionRepo  sessionRepo.SessionRepository
	NotifRepo    notificationRepo.NotificationRepository
	Store        SessionStore
	Payments     PaymentHandler
	Reminders    tasks.ReminderScheduler
	Refreshers   *RefresherManager
	HorizonDays  int
}

package models

import "time"

// Session request lifecycle statuses. Pending and confirmed sessions both
// occupy the tutor's calendar.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionDeclined  = "declined"
	SessionCancelled = "cancelled"
)

// SessionRequest is a tutoring session on the calendar, created when a user
// confirms a validated start/end selection. Authoritative conflict detection
// happens at insert time in the repository.
type SessionRequest struct {
	ID        string    `bson:"id" json:"id"`
	TutorID   string    `bson:"tutorId" json:"tutorId"`
	UserID    string    `bson:"userId" json:"userId"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Interval returns the session's calendar footprint.
func (s SessionRequest) Interval() BookedInterval {
	return BookedInterval{Start: s.Start, End: s.End}
}

// Notification is a lightweight in-app notification record written by the
// reminder worker. Push delivery to devices is handled externally.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	Target    string    `bson:"target" json:"target"` // "user" or "tutor"
	TargetID  string    `bson:"targetId" json:"targetId"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	SessionID string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// Tutor is the owner of a weekly schedule. Account lifecycle (signup,
// verification, payouts) lives in the external accounts backend; this record
// carries only what the booking engine needs.
type Tutor struct {
	ID          string         `bson:"id" json:"id"`
	Name        string         `bson:"name" json:"name"`
	Subjects    []string       `bson:"subjects,omitempty" json:"subjects,omitempty"`
	HourlyRate  float64        `bson:"hourlyRate" json:"hourlyRate"`
	Currency    string         `bson:"currency" json:"currency"`
	Timezone    string         `bson:"timezone" json:"timezone"` // IANA name, e.g. "America/New_York"
	Schedule    WeeklySchedule `bson:"schedule" json:"schedule"`
	ScheduleRev int            `bson:"scheduleRev" json:"scheduleRev"` // bumped on every save
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Location resolves the tutor's timezone, falling back to UTC.
func (t Tutor) Location() *time.Location {
	if t.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

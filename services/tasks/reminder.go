package tasks

import (
	"context"
	"encoding/json"
	"time"

	"tutorhive/config"
	"tutorhive/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "session:reminder"

// ReminderLeadTime is how far before the session start the reminder fires.
const ReminderLeadTime = time.Hour

// ReminderPayload is the asynq task body for a session reminder.
type ReminderPayload struct {
	SessionID string    `json:"sessionId"`
	TutorID   string    `json:"tutorId"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	StartsAt  time.Time `json:"startsAt"`
}

// NewReminderTask builds a session reminder task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues a reminder for a booked session.
type ReminderScheduler interface {
	ScheduleSessionReminder(ctx context.Context, req models.SessionRequest) error
}

// AsynqReminderScheduler enqueues reminders on the asynq Redis queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler connects an asynq client to the reminder queue
// Redis database from config.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// ScheduleSessionReminder enqueues a reminder one hour before the session
// starts. Sessions starting sooner than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleSessionReminder(ctx context.Context, req models.SessionRequest) error {
	fireAt := req.Start.Add(-ReminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		SessionID: req.ID,
		TutorID:   req.TutorID,
		UserID:    req.UserID,
		Subject:   req.Subject,
		StartsAt:  req.Start,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

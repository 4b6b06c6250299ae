package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tutorhive/config"
	notificationRepo "tutorhive/database/repository/notification"
	"tutorhive/models"
	"tutorhive/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifs notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionReminder, handleSessionReminder(notifs))

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleSessionReminder writes an in-app reminder for both parties of an
// upcoming session.
func handleSessionReminder(notifs notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		title := "Upcoming session"
		body := fmt.Sprintf("Your %s session starts at %s", p.Subject, p.StartsAt.Format("3:04 PM"))

		for _, n := range []models.Notification{
			{Target: "user", TargetID: p.UserID, Title: title, Body: body, SessionID: p.SessionID},
			{Target: "tutor", TargetID: p.TutorID, Title: title, Body: body, SessionID: p.SessionID},
		} {
			if err := notifs.Insert(ctx, n); err != nil {
				log.Printf("[ReminderHandler] failed to write notification for %s %s: %v", n.Target, n.TargetID, err)
				return err
			}
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

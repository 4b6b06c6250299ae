package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhive/config"
	"tutorhive/cron"
	"tutorhive/database"
	notificationRepo "tutorhive/database/repository/notification"
	sessionRepoPkg "tutorhive/database/repository/session"
	tutorRepoPkg "tutorhive/database/repository/tutor"
	"tutorhive/handlers"
	"tutorhive/routes"
	"tutorhive/services/booking"
	"tutorhive/services/schedule"
	"tutorhive/services/tasks"
	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo: tutorRepo,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	sessionStore := booking.NewRedisSessionStore(utils.GetCacheClient(), utils.SelectionSessionTTL)
	flowService := &booking.DefaultBookingFlowService{
		TutorRepo:   tutorRepo,
		SessionRepo: sessionRepo,
		NotifRepo:   notifRepo,
		Store:       sessionStore,
		Payments:    booking.NewStripePaymentHandler(),
		Reminders:   reminderScheduler,
		HorizonDays: config.AppConfig.BookingHorizonDays,
	}
	refreshers := booking.NewRefresherManager(flowService, time.Minute)
	flowService.Refreshers = refreshers

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tutors:   &handlers.TutorHandler{Repo: tutorRepo, Sessions: sessionRepo},
		Schedule: &handlers.ScheduleHandler{Service: scheduleService},
		Booking:  &handlers.BookingHandler{Flow: flowService},
		Sessions: &handlers.SessionHandler{Repo: sessionRepo, Notifs: notifRepo},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker in background.
	cron.InitReminderWorker(notifRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	refreshers.StopAll()
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

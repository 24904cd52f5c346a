// File: medicare/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicare/config"
	"medicare/cron"
	"medicare/guard"
	"medicare/handlers"
	"medicare/httpclient"
	"medicare/middleware"
	"medicare/routes"
	"medicare/services/admin"
	"medicare/services/appointment"
	"medicare/services/auth"
	"medicare/services/deletion"
	"medicare/services/doctor"
	"medicare/services/notification"
	"medicare/services/review"
	"medicare/services/user"
	"medicare/storage"
	appointmentstore "medicare/store/appointment"
	reviewstore "medicare/store/review"
	"medicare/store/session"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	config.LoadConfig(flags)
	logger := utils.GetLogger()
	defer logger.Sync()

	// durable session storage.
	sessionStorage, err := storage.New(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session storage: %v", err)
	}
	if closer, ok := sessionStorage.(storage.Closer); ok {
		defer closer.Close()
	}

	// backend client. The session store becomes its token source below.
	client := httpclient.New(httpclient.Config{
		BaseURL:           config.AppConfig.APIBaseURL,
		Tokens:            session.StorageTokenSource{Storage: sessionStorage},
		Timeout:           config.AppConfig.RequestTimeout,
		RequestsPerMinute: config.AppConfig.MaxRequestsPerMin,
		Logger:            logger.Named("api"),
	})

	// services.
	notifier := notification.NewNotificationService(logger.Named("notify"), 0)
	authService := auth.NewAuthService(client)
	userService := user.NewUserService(client)
	doctorService := doctor.NewDoctorService(client)
	appointmentService := appointment.NewAppointmentService(client)
	reviewService := review.NewReviewService(client)
	adminService := admin.NewAdminService(client)
	deletionService := deletion.NewDeletionRequestService(client)

	// stores.
	sessionStore, err := session.New(session.Config{
		Auth:     authService,
		Storage:  sessionStorage,
		Notifier: notifier,
		Logger:   logger.Named("session"),
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize session store: %v", err)
	}
	defer sessionStore.Close()
	client.SetTokenSource(sessionStore)
	client.OnUnauthorized(sessionStore.Expire)

	appointments := appointmentstore.New(appointmentService, notifier, logger.Named("appointments"))
	defer appointments.Close()
	reviews := reviewstore.New(reviewService, notifier, logger.Named("reviews"))
	defer reviews.Close()

	if st := sessionStore.Snapshot(); st.Authenticated() {
		logger.Info("Restored session", zap.String("role", st.Role.String()), zap.String("userID", st.User.ID()))
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// dependency health.
	probes := map[string]utils.HealthProbe{"backend": client.Ping}
	if pinger, ok := sessionStorage.(storage.Pinger); ok {
		probes["storage"] = pinger.Ping
	}

	// appointment reminders.
	var reminders cron.Scheduler
	if config.AppConfig.RemindersEnabled {
		reminderCfg := cron.ReminderConfig{
			Redis: asynq.RedisClientOpt{
				Addr:     config.AppConfig.RedisAddr,
				Password: config.AppConfig.RedisPassword,
				DB:       config.AppConfig.RedisReminderQueueDB,
			},
			LeadTime: config.AppConfig.ReminderLeadTime,
			Logger:   logger.Named("reminders"),
		}
		scheduler := cron.NewReminderScheduler(reminderCfg)
		defer scheduler.Close()
		worker := cron.NewReminderWorker(reminderCfg, notifier)
		worker.Start(bgCtx)
		defer worker.Shutdown()
		probes["reminders"] = worker.Ping
		reminders = scheduler
	}
	utils.StartHealthMonitor(bgCtx, config.AppConfig.HealthCheckInterval, probes)

	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(sessionStore),
		Doctors:       handlers.NewDoctorHandler(doctorService, reviews, appointments, sessionStore),
		Profile:       handlers.NewProfileHandler(userService, deletionService, appointments, sessionStore),
		DoctorProfile: handlers.NewDoctorProfileHandler(doctorService, deletionService, appointments, sessionStore),
		Admin:         handlers.NewAdminHandler(adminService, deletionService, notifier),
		Notifications: handlers.NewNotificationHandler(notifier),
	}
	handlerBundle.Doctors.Reminders = reminders
	handlerBundle.Profile.Reminders = reminders
	handlerBundle.DoctorProfile.Reminders = reminders

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger.Named("console")))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, guard.New(sessionStore, guard.DefaultRoutes()))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "127.0.0.1:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting console on %s against %s...", srv.Addr, config.AppConfig.APIBaseURL)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: console is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: console stopped gracefully")
}

// Package cron delivers appointment reminders through an asynq queue kept in
// Redis. The scheduler enqueues one task per booking; the worker turns due
// tasks into notifications.
package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicare/models"
	"medicare/services/notification"
	"medicare/services/tasks"
	"medicare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const reminderQueue = "default"

// Scheduler plans and withdraws appointment reminders.
type Scheduler interface {
	Schedule(ctx context.Context, appt models.Appointment) error
	Cancel(ctx context.Context, appointmentID string) error
}

// ReminderConfig configures both ends of the reminder queue.
type ReminderConfig struct {
	Redis       asynq.RedisClientOpt
	LeadTime    time.Duration
	Concurrency int
	Location    *time.Location
	Logger      *zap.Logger
}

// ReminderScheduler enqueues reminder tasks.
type ReminderScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	lead      time.Duration
	loc       *time.Location
	logger    *zap.Logger
	now       func() time.Time
}

// NewReminderScheduler opens the queue client.
func NewReminderScheduler(cfg ReminderConfig) *ReminderScheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderScheduler{
		client:    asynq.NewClient(cfg.Redis),
		inspector: asynq.NewInspector(cfg.Redis),
		lead:      cfg.LeadTime,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// Schedule enqueues the reminder for appt. Appointments that have already
// started, or whose date cannot be read, are skipped. Scheduling the same
// appointment twice is not an error.
func (s *ReminderScheduler) Schedule(ctx context.Context, appt models.Appointment) error {
	start, err := tasks.StartTime(appt.AppointmentDate, appt.TimeSlot, s.loc)
	if err != nil {
		s.logger.Debug("Skipping reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
		return nil
	}
	fireAt, ok := tasks.FireTime(start, s.now(), s.lead)
	if !ok {
		return nil
	}

	task, opts, err := tasks.NewReminderTask(tasks.PayloadFor(appt), fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", appt.ID, err)
	}
	s.logger.Info("Reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// Cancel withdraws the reminder of an appointment, if one is pending.
func (s *ReminderScheduler) Cancel(_ context.Context, appointmentID string) error {
	err := s.inspector.DeleteTask(reminderQueue, tasks.ReminderTaskID(appointmentID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to cancel reminder for %s: %w", appointmentID, err)
}

func (s *ReminderScheduler) Close() error {
	return errors.Join(s.client.Close(), s.inspector.Close())
}

// ReminderWorker processes due reminder tasks.
type ReminderWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewReminderWorker builds a worker that reports reminders to notifier.
func NewReminderWorker(cfg ReminderConfig, notifier notification.Notifier) *ReminderWorker {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}
	srv := asynq.NewServer(cfg.Redis, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{reminderQueue: 1},
		Logger:      logger.Sugar(),
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, HandleReminder(notifier, logger))
	return &ReminderWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying with a growing delay
// while Redis is unreachable.
func (w *ReminderWorker) Start(ctx context.Context) {
	go func() {
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := w.srv.Ping()
			if err == nil {
				if err := w.srv.Start(w.mux); err != nil {
					w.logger.Error("Failed to start reminder worker", zap.Error(err))
					return
				}
				w.logger.Info("Reminder worker started")
				return
			}
			w.logger.Warn("Reminder queue unreachable",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempt == maxAttempts {
				w.logger.Error("Reminder worker gave up; reminders are disabled")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempt*2) * time.Second):
			}
		}
	}()
}

// Ping checks the queue's Redis connection.
func (w *ReminderWorker) Ping(context.Context) error {
	return w.srv.Ping()
}

func (w *ReminderWorker) Shutdown() {
	w.srv.Shutdown()
}

// HandleReminder turns a reminder task into a success notification. A
// malformed payload is dropped without retrying.
func HandleReminder(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminder(task)
		if err != nil {
			logger.Warn("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		logger.Info("Triggering reminder", zap.String("appointmentID", p.AppointmentID))
		notifier.Success(tasks.Message(p, utils.FormatDoctorName, utils.FormatDate))
		return nil
	}
}

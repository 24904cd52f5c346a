package handlers

import (
	"medicare/cron"
	"medicare/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Reminder failures never fail the request that triggered them.

func scheduleReminder(c *gin.Context, s cron.Scheduler, appt models.Appointment) {
	if s == nil || appt.ID == "" {
		return
	}
	if err := s.Schedule(c.Request.Context(), appt); err != nil {
		getLogger(c).Warn("Failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func cancelReminder(c *gin.Context, s cron.Scheduler, appointmentID string) {
	if s == nil {
		return
	}
	if err := s.Cancel(c.Request.Context(), appointmentID); err != nil {
		getLogger(c).Warn("Failed to cancel reminder", zap.String("appointmentID", appointmentID), zap.Error(err))
	}
}

// endsReminder reports whether an appointment in status no longer needs one.
func endsReminder(status string) bool {
	return status == models.AppointmentCancelled || status == models.AppointmentCompleted
}

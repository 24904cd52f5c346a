package tasks

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"medicare/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// ErrNoAppointmentTime is returned when an appointment's date cannot be read.
var ErrNoAppointmentTime = errors.New("appointment has no usable date")

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "01-02-2006"}

var slotStart = regexp.MustCompile(`(?i)^\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)

var slotLayouts = []string{"15:04", "3:04pm", "3pm", "3:04 pm", "3 pm"}

// ReminderTaskID is the asynq task id for an appointment's reminder, so a
// booking is never reminded twice and a cancellation can find its task.
func ReminderTaskID(appointmentID string) string {
	return "reminder:" + appointmentID
}

// NewReminderTask builds the reminder task for payload, due at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.AppointmentID)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// ParseReminder decodes a reminder task payload.
func ParseReminder(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, err
	}
	if p.AppointmentID == "" {
		return p, errors.New("reminder payload has no appointment id")
	}
	return p, nil
}

// PayloadFor builds the reminder payload of an appointment.
func PayloadFor(appt models.Appointment) models.ReminderPayload {
	return models.ReminderPayload{
		AppointmentID:   appt.ID,
		DoctorName:      appt.Doctor.Name,
		AppointmentDate: appt.AppointmentDate,
		TimeSlot:        appt.TimeSlot,
	}
}

// StartTime resolves when an appointment begins, in loc. The time slot's
// leading clock time is used when it parses; otherwise the day starts at
// midnight.
func StartTime(date, slot string, loc *time.Location) (time.Time, error) {
	var day time.Time
	var err error
	for _, layout := range dateLayouts {
		if day, err = time.ParseInLocation(layout, strings.TrimSpace(date), loc); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrNoAppointmentTime
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	m := slotStart.FindStringSubmatch(slot)
	if m == nil {
		return day, nil
	}
	clock := strings.ToLower(strings.TrimSpace(m[1]))
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
		}
	}
	return day, nil
}

// FireTime is lead before the appointment starts, or now when that moment
// has already passed. ok is false for appointments already under way.
func FireTime(start, now time.Time, lead time.Duration) (fireAt time.Time, ok bool) {
	if !start.After(now) {
		return time.Time{}, false
	}
	fireAt = start.Add(-lead)
	if fireAt.Before(now) {
		fireAt = now
	}
	return fireAt, true
}

// Message is the text shown to the patient when a reminder fires.
func Message(p models.ReminderPayload, formatName func(string) string, formatDate func(string) string) string {
	var b strings.Builder
	b.WriteString("Reminder: you have an appointment")
	if p.DoctorName != "" {
		b.WriteString(" with ")
		b.WriteString(formatName(p.DoctorName))
	}
	b.WriteString(" on ")
	b.WriteString(formatDate(p.AppointmentDate))
	if p.TimeSlot != "" {
		b.WriteString(" at ")
		b.WriteString(p.TimeSlot)
	}
	return b.String()
}

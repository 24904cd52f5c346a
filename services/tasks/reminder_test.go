package tasks

import (
	"testing"
	"time"

	"medicare/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTimeReadsSlotClock(t *testing.T) {
	cases := map[string]string{
		"14:30":           "2030-05-01 14:30",
		"09:00 - 10:00":   "2030-05-01 09:00",
		"10:15 AM":        "2030-05-01 10:15",
		"3 pm - 4 pm":     "2030-05-01 15:00",
		"":                "2030-05-01 00:00",
		"morning session": "2030-05-01 00:00",
	}
	for slot, want := range cases {
		got, err := StartTime("2030-05-01", slot, time.UTC)
		require.NoError(t, err, slot)
		assert.Equal(t, want, got.Format("2006-01-02 15:04"), slot)
	}
}

func TestStartTimeAcceptsBackendDates(t *testing.T) {
	got, err := StartTime("2030-05-01T00:00:00.000Z", "08:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC), got)

	_, err = StartTime("soon", "08:00", time.UTC)
	assert.ErrorIs(t, err, ErrNoAppointmentTime)
}

func TestFireTime(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	at, ok := FireTime(now.Add(48*time.Hour), now, 24*time.Hour)
	require.True(t, ok)
	assert.Equal(t, now.Add(24*time.Hour), at)

	at, ok = FireTime(now.Add(time.Hour), now, 24*time.Hour)
	require.True(t, ok)
	assert.Equal(t, now, at, "a late booking is reminded right away")

	_, ok = FireTime(now.Add(-time.Minute), now, 24*time.Hour)
	assert.False(t, ok)
}

func TestReminderTaskCarriesPayload(t *testing.T) {
	appt := models.Appointment{
		ID:              "a1",
		Doctor:          models.Ref{ID: "d1", Name: "Jane Doe"},
		AppointmentDate: "2030-05-01",
		TimeSlot:        "09:00",
	}
	task, opts, err := NewReminderTask(PayloadFor(appt), time.Now())
	require.NoError(t, err)
	assert.Equal(t, TypeAppointmentReminder, task.Type())
	assert.Len(t, opts, 3)

	p, err := ParseReminder(task)
	require.NoError(t, err)
	assert.Equal(t, "a1", p.AppointmentID)
	assert.Equal(t, "Jane Doe", p.DoctorName)
}

func TestParseReminderRejectsMissingID(t *testing.T) {
	_, err := ParseReminder(asynq.NewTask(TypeAppointmentReminder, []byte(`{"appointmentDate":"2030-05-01"}`)))
	assert.Error(t, err)

	_, err = ParseReminder(asynq.NewTask(TypeAppointmentReminder, []byte(`not json`)))
	assert.Error(t, err)
}

func TestMessage(t *testing.T) {
	p := models.ReminderPayload{AppointmentID: "a1", DoctorName: "Jane Doe", AppointmentDate: "2030-05-01", TimeSlot: "09:00"}
	name := func(s string) string { return "Dr. " + s }
	date := func(s string) string { return "May 1, 2030" }
	assert.Equal(t, "Reminder: you have an appointment with Dr. Jane Doe on May 1, 2030 at 09:00", Message(p, name, date))

	p.DoctorName, p.TimeSlot = "", ""
	assert.Equal(t, "Reminder: you have an appointment on May 1, 2030", Message(p, name, date))
}

package cron

import (
	"context"
	"testing"

	"medicare/services/notification"
	"medicare/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleReminderNotifiesPatient(t *testing.T) {
	feed := notification.NewNotificationService(nil, 0)
	h := HandleReminder(feed, zap.NewNop())

	task := asynq.NewTask(tasks.TypeAppointmentReminder,
		[]byte(`{"appointmentId":"a1","doctorName":"Jane Doe","appointmentDate":"2030-05-01","timeSlot":"09:00"}`))
	require.NoError(t, h(context.Background(), task))

	got := feed.Recent()
	require.Len(t, got, 1)
	assert.Equal(t, "Reminder: you have an appointment with Dr. Jane Doe on May 1, 2030 at 09:00", got[0].Message)
}

func TestHandleReminderSkipsRetryOnBadPayload(t *testing.T) {
	feed := notification.NewNotificationService(nil, 0)
	h := HandleReminder(feed, zap.NewNop())

	err := h(context.Background(), asynq.NewTask(tasks.TypeAppointmentReminder, []byte(`{}`)))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, feed.Recent())
}

package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medicare/httpclient"
	"medicare/httpclient/apitest"
	"medicare/models"
	svc "medicare/services/appointment"
	"medicare/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentLifecycle(t *testing.T) {
	api := apitest.New().
		On("GET", "/appointments/patient", apitest.OK([]models.Appointment{{ID: "a1", Status: "pending"}}, "")).
		On("POST", "/appointments", apitest.OK(models.Appointment{ID: "a2", Status: "pending"}, "")).
		On("PUT", "/appointments/a1/status", apitest.OK(models.Appointment{ID: "a1", Status: "cancelled"}, "Cancelled")).
		On("DELETE", "/appointments/a2", apitest.OK(nil, ""))
	n := notification.NewNotificationService(nil, 0)
	s := New(svc.NewAppointmentService(api), n, nil)
	ctx := context.Background()

	require.True(t, s.FetchPatientAppointments(ctx).Success)
	require.True(t, s.CreateAppointment(ctx, models.AppointmentRequest{Doctor: "d1"}).Success)

	st := s.Snapshot()
	require.Len(t, st.Items, 2)
	require.NotNil(t, st.Current)
	assert.Equal(t, "a2", st.Current.ID)

	s.SetCurrent(st.Items[0])
	res := s.UpdateAppointmentStatus(ctx, "a1", models.AppointmentCancelled)
	require.True(t, res.Success)
	st = s.Snapshot()
	assert.Equal(t, "cancelled", st.Items[0].Status)
	assert.Equal(t, "pending", st.Current.Status, "current is not refreshed by an update")

	require.True(t, s.DeleteAppointment(ctx, "a2").Success)
	assert.Len(t, s.Snapshot().Items, 1)

	var msgs []string
	for _, note := range n.Recent() {
		msgs = append(msgs, note.Message)
	}
	assert.Equal(t, []string{
		"Appointment created successfully",
		"Cancelled",
		"Appointment deleted successfully",
	}, msgs)
}

func TestFetchDoctorAppointmentsFailure(t *testing.T) {
	api := apitest.New().On("GET", "/appointments/doctor/d1", apitest.Failure("", 500))
	s := New(svc.NewAppointmentService(api), nil, nil)

	res := s.FetchDoctorAppointments(context.Background(), "d1")
	assert.False(t, res.Success)
	assert.Equal(t, "Failed to fetch appointments", res.Message)
	assert.Equal(t, "Failed to fetch appointments", s.Snapshot().Error)
}

func TestDeleteSucceedsOnEmptyAndTextBodies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/appointments/patient", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []gin.H{{"_id": "a1"}, {"_id": "a2"}}})
	})
	r.DELETE("/api/v1/appointments/a1", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.DELETE("/api/v1/appointments/a2", func(c *gin.Context) {
		c.String(http.StatusOK, "Deleted")
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := httpclient.New(httpclient.Config{
		BaseURL: srv.URL + "/api/v1",
		Tokens:  httpclient.TokenSourceFunc(func() string { return "t" }),
	})
	n := notification.NewNotificationService(nil, 0)
	s := New(svc.NewAppointmentService(client), n, nil)
	ctx := context.Background()

	require.True(t, s.FetchPatientAppointments(ctx).Success)
	require.Len(t, s.Snapshot().Items, 2)

	res := s.DeleteAppointment(ctx, "a1")
	require.True(t, res.Success, res.Message)
	assert.Equal(t, http.StatusNoContent, res.Status)

	res = s.DeleteAppointment(ctx, "a2")
	require.True(t, res.Success, res.Message)

	st := s.Snapshot()
	assert.Empty(t, st.Items)
	assert.Empty(t, st.Error)
	for _, note := range n.Recent() {
		assert.Equal(t, models.LevelSuccess, note.Level, note.Message)
	}
}

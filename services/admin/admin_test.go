package admin

import (
	"context"
	"testing"

	"medicare/httpclient/apitest"
	"medicare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpoints(t *testing.T) {
	api := apitest.New()
	api.Default = apitest.OK(nil, "")
	svc := NewAdminService(api)
	ctx := context.Background()

	cases := []struct {
		call   func()
		method string
		path   string
	}{
		{func() { svc.GetDashboardStats(ctx) }, "GET", "/admin/dashboard"},
		{func() { svc.GetAllDoctors(ctx) }, "GET", "/admin/doctors"},
		{func() { svc.UpdateDoctorStatus(ctx, "d1", models.StatusUpdate{Status: "approved"}) }, "PUT", "/admin/doctors/d1/status"},
		{func() { svc.DeleteDoctor(ctx, "d1") }, "DELETE", "/admin/doctors/d1"},
		{func() { svc.GetAllUsers(ctx) }, "GET", "/admin/users"},
		{func() { svc.DeleteUser(ctx, "u1") }, "DELETE", "/admin/users/u1"},
		{func() { svc.GetAllAppointments(ctx) }, "GET", "/admin/appointments"},
		{func() { svc.UpdateAppointmentStatus(ctx, "a1", "cancelled") }, "PUT", "/admin/appointments/a1/status"},
		{func() { svc.DeleteAppointment(ctx, "a1") }, "DELETE", "/admin/appointments/a1"},
	}
	for _, tc := range cases {
		tc.call()
		last := api.Last()
		assert.Equal(t, tc.method, last.Method, tc.path)
		assert.Equal(t, tc.path, last.Path)
		assert.True(t, last.AuthRequired, tc.path)
	}
	assert.Equal(t, models.StatusUpdate{Status: "cancelled"}, api.Calls[7].Body)
}

func TestDashboardStatsDecode(t *testing.T) {
	api := apitest.New().On("GET", "/admin/dashboard", apitest.OK(map[string]any{
		"totalPatients": 3, "totalDoctors": 2,
	}, ""))

	res := NewAdminService(api).GetDashboardStats(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, 3, res.Data.TotalPatients)
	assert.Equal(t, 2, res.Data.TotalDoctors)
}

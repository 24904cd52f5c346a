package appointment

import (
	"context"
	"testing"

	"medicare/httpclient/apitest"
	"medicare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentEndpoints(t *testing.T) {
	api := apitest.New()
	api.Default = apitest.OK(nil, "")
	svc := NewAppointmentService(api)
	ctx := context.Background()

	svc.CreateAppointment(ctx, models.AppointmentRequest{Doctor: "d1", AppointmentDate: "2024-05-01", TimeSlot: "09:00"})
	assert.Equal(t, apitest.Call{Method: "POST", Path: "/appointments", Body: models.AppointmentRequest{Doctor: "d1", AppointmentDate: "2024-05-01", TimeSlot: "09:00"}, AuthRequired: true}, api.Last())

	svc.GetPatientAppointments(ctx)
	assert.Equal(t, "/appointments/patient", api.Last().Path)

	svc.GetDoctorAppointments(ctx, "d1")
	assert.Equal(t, "/appointments/doctor/d1", api.Last().Path)

	svc.UpdateAppointmentStatus(ctx, "a1", models.StatusUpdate{Status: models.AppointmentApproved})
	assert.Equal(t, "PUT", api.Last().Method)
	assert.Equal(t, "/appointments/a1/status", api.Last().Path)

	svc.DeleteAppointment(ctx, "a1")
	assert.Equal(t, "DELETE", api.Last().Method)
	assert.Equal(t, "/appointments/a1", api.Last().Path)

	for _, c := range api.Calls {
		assert.True(t, c.AuthRequired, c.Path)
	}
}

func TestCreateAppointmentDecodesPopulatedRefs(t *testing.T) {
	api := apitest.New().On("POST", "/appointments", apitest.OK(map[string]any{
		"_id":     "a1",
		"doctor":  map[string]any{"_id": "d1", "name": "Dr. Who"},
		"patient": "p1",
		"status":  "pending",
	}, "Appointment booked"))

	res := NewAppointmentService(api).CreateAppointment(context.Background(), models.AppointmentRequest{Doctor: "d1"})
	require.True(t, res.Success)
	assert.Equal(t, "Dr. Who", res.Data.Doctor.Name)
	assert.Equal(t, "p1", res.Data.Patient.ID)
	assert.Equal(t, "Appointment booked", res.Message)
}

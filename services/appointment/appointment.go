package appointment

import (
	"context"
	"net/url"

	"medicare/httpclient"
	"medicare/models"
)

func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, req models.AppointmentRequest) models.Result[models.Appointment] {
	return httpclient.Decode[models.Appointment](s.API.Post(ctx, "/appointments", req, true))
}

// GetPatientAppointments lists the appointments of the logged-in patient.
func (s *DefaultAppointmentService) GetPatientAppointments(ctx context.Context) models.Result[[]models.Appointment] {
	return httpclient.Decode[[]models.Appointment](s.API.Get(ctx, "/appointments/patient", true))
}

func (s *DefaultAppointmentService) GetDoctorAppointments(ctx context.Context, doctorID string) models.Result[[]models.Appointment] {
	return httpclient.Decode[[]models.Appointment](s.API.Get(ctx, "/appointments/doctor/"+url.PathEscape(doctorID), true))
}

func (s *DefaultAppointmentService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, update models.StatusUpdate) models.Result[models.Appointment] {
	return httpclient.Decode[models.Appointment](s.API.Put(ctx, "/appointments/"+url.PathEscape(appointmentID)+"/status", update, true))
}

func (s *DefaultAppointmentService) DeleteAppointment(ctx context.Context, appointmentID string) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Delete(ctx, "/appointments/"+url.PathEscape(appointmentID), true))
}

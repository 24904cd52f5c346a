package admin

import (
	"context"
	"net/url"

	"medicare/httpclient"
	"medicare/models"
)

func (s *DefaultAdminService) GetDashboardStats(ctx context.Context) models.Result[models.DashboardStats] {
	return httpclient.Decode[models.DashboardStats](s.API.Get(ctx, "/admin/dashboard", true))
}

// GetAllDoctors includes doctors still awaiting approval.
func (s *DefaultAdminService) GetAllDoctors(ctx context.Context) models.Result[[]models.Doctor] {
	return httpclient.Decode[[]models.Doctor](s.API.Get(ctx, "/admin/doctors", true))
}

func (s *DefaultAdminService) UpdateDoctorStatus(ctx context.Context, doctorID string, update models.StatusUpdate) models.Result[models.Doctor] {
	return httpclient.Decode[models.Doctor](s.API.Put(ctx, "/admin/doctors/"+url.PathEscape(doctorID)+"/status", update, true))
}

func (s *DefaultAdminService) DeleteDoctor(ctx context.Context, doctorID string) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Delete(ctx, "/admin/doctors/"+url.PathEscape(doctorID), true))
}

func (s *DefaultAdminService) GetAllUsers(ctx context.Context) models.Result[[]models.UserProfile] {
	return httpclient.Decode[[]models.UserProfile](s.API.Get(ctx, "/admin/users", true))
}

func (s *DefaultAdminService) DeleteUser(ctx context.Context, userID string) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Delete(ctx, "/admin/users/"+url.PathEscape(userID), true))
}

func (s *DefaultAdminService) GetAllAppointments(ctx context.Context) models.Result[[]models.Appointment] {
	return httpclient.Decode[[]models.Appointment](s.API.Get(ctx, "/admin/appointments", true))
}

func (s *DefaultAdminService) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) models.Result[models.Appointment] {
	body := models.StatusUpdate{Status: status}
	return httpclient.Decode[models.Appointment](s.API.Put(ctx, "/admin/appointments/"+url.PathEscape(appointmentID)+"/status", body, true))
}

func (s *DefaultAdminService) DeleteAppointment(ctx context.Context, appointmentID string) models.Result[struct{}] {
	return httpclient.Decode[struct{}](s.API.Delete(ctx, "/admin/appointments/"+url.PathEscape(appointmentID), true))
}

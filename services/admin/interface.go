package admin

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type AdminService interface {
	GetDashboardStats(ctx context.Context) models.Result[models.DashboardStats]

	GetAllDoctors(ctx context.Context) models.Result[[]models.Doctor]
	UpdateDoctorStatus(ctx context.Context, doctorID string, update models.StatusUpdate) models.Result[models.Doctor]
	DeleteDoctor(ctx context.Context, doctorID string) models.Result[struct{}]

	GetAllUsers(ctx context.Context) models.Result[[]models.UserProfile]
	DeleteUser(ctx context.Context, userID string) models.Result[struct{}]

	GetAllAppointments(ctx context.Context) models.Result[[]models.Appointment]
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) models.Result[models.Appointment]
	DeleteAppointment(ctx context.Context, appointmentID string) models.Result[struct{}]
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	API httpclient.API
}

func NewAdminService(api httpclient.API) *DefaultAdminService {
	return &DefaultAdminService{API: api}
}

package appointment

import (
	"context"

	"medicare/httpclient"
	"medicare/models"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) models.Result[models.Appointment]
	GetPatientAppointments(ctx context.Context) models.Result[[]models.Appointment]
	GetDoctorAppointments(ctx context.Context, doctorID string) models.Result[[]models.Appointment]
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, update models.StatusUpdate) models.Result[models.Appointment]
	DeleteAppointment(ctx context.Context, appointmentID string) models.Result[struct{}]
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	API httpclient.API
}

func NewAppointmentService(api httpclient.API) *DefaultAppointmentService {
	return &DefaultAppointmentService{API: api}
}

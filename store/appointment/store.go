package appointment

import (
	"context"

	"medicare/models"
	"medicare/services/appointment"
	"medicare/services/notification"
	"medicare/store/resource"

	"go.uber.org/zap"
)

var messages = resource.Messages{
	FetchFailed:  "Failed to fetch appointments",
	Created:      "Appointment created successfully",
	CreateFailed: "Failed to create appointment",
	Updated:      "Appointment status updated successfully",
	UpdateFailed: "Failed to update appointment status",
	Deleted:      "Appointment deleted successfully",
	DeleteFailed: "Failed to delete appointment",
}

// Store caches the appointments of the logged-in patient or doctor.
type Store struct {
	*resource.Store[models.Appointment]
	svc appointment.AppointmentService
}

func New(svc appointment.AppointmentService, notifier notification.Notifier, logger *zap.Logger) *Store {
	return &Store{
		Store: resource.New[models.Appointment](resource.Config{
			Name:     "appointments",
			Behavior: resource.Behavior{SetCurrentOnCreate: true},
			Messages: messages,
			Notifier: notifier,
			Logger:   logger,
		}),
		svc: svc,
	}
}

func (s *Store) FetchPatientAppointments(ctx context.Context) models.Result[[]models.Appointment] {
	return s.Fetch(ctx, s.svc.GetPatientAppointments)
}

func (s *Store) FetchDoctorAppointments(ctx context.Context, doctorID string) models.Result[[]models.Appointment] {
	return s.Fetch(ctx, func(ctx context.Context) models.Result[[]models.Appointment] {
		return s.svc.GetDoctorAppointments(ctx, doctorID)
	})
}

func (s *Store) CreateAppointment(ctx context.Context, req models.AppointmentRequest) models.Result[models.Appointment] {
	return s.Create(ctx, func(ctx context.Context) models.Result[models.Appointment] {
		return s.svc.CreateAppointment(ctx, req)
	})
}

// UpdateAppointmentStatus replaces the list entry but leaves Current alone;
// callers showing a detail view refresh it themselves.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) models.Result[models.Appointment] {
	return s.Update(ctx, func(ctx context.Context) models.Result[models.Appointment] {
		return s.svc.UpdateAppointmentStatus(ctx, appointmentID, models.StatusUpdate{Status: status})
	})
}

func (s *Store) DeleteAppointment(ctx context.Context, appointmentID string) models.Result[struct{}] {
	return s.Remove(ctx, appointmentID, func(ctx context.Context) models.Result[struct{}] {
		return s.svc.DeleteAppointment(ctx, appointmentID)
	})
}

package models

import "time"

// AppointmentStatus values accepted by the backend.
const (
	AppointmentPending   = "pending"
	AppointmentApproved  = "approved"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment is a booking between a patient and a doctor.
type Appointment struct {
	ID              string     `json:"_id"`
	Doctor          Ref        `json:"doctor"`
	Patient         Ref        `json:"patient"`
	AppointmentDate string     `json:"appointmentDate,omitempty"`
	TimeSlot        string     `json:"timeSlot,omitempty"`
	Status          string     `json:"status,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	TicketPrice     float64    `json:"ticketPrice,omitempty"`
	IsPaid          bool       `json:"isPaid,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func (a Appointment) GetID() string { return a.ID }

// AppointmentRequest is the body of POST /appointments.
type AppointmentRequest struct {
	Doctor          string `json:"doctor"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot        string `json:"timeSlot"`
	Reason          string `json:"reason,omitempty"`
}

// StatusUpdate is the body of every */status endpoint.
type StatusUpdate struct {
	Status string `json:"status"`
}

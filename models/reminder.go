package models

// ReminderPayload is the body of an appointment reminder task.
type ReminderPayload struct {
	AppointmentID   string `json:"appointmentId"`
	DoctorName      string `json:"doctorName,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	TimeSlot        string `json:"timeSlot,omitempty"`
}

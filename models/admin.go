package models

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalPatients           int            `json:"totalPatients"`
	TotalDoctors            int            `json:"totalDoctors"`
	TotalAppointments       int            `json:"totalAppointments"`
	ApprovedDoctors         int            `json:"approvedDoctors"`
	PendingDoctors          int            `json:"pendingDoctors"`
	PendingDeletionRequests int            `json:"pendingDeletionRequests"`
	AppointmentStats        map[string]int `json:"appointmentStats,omitempty"`
	RecentAppointments      []Appointment  `json:"recentAppointments,omitempty"`
}

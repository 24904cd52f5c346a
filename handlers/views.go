package handlers

import (
	"medicare/models"
	"medicare/utils"
)

// DoctorView is a doctor as listed in the console.
type DoctorView struct {
	models.Doctor
	DisplayName string `json:"displayName"`
}

func doctorViews(docs []models.Doctor) []DoctorView {
	out := make([]DoctorView, 0, len(docs))
	for _, d := range docs {
		out = append(out, DoctorView{Doctor: d, DisplayName: utils.FormatDoctorName(d.Name)})
	}
	return out
}

// AppointmentView adds display fields to an appointment.
type AppointmentView struct {
	models.Appointment
	DoctorName    string `json:"doctorName,omitempty"`
	FormattedDate string `json:"formattedDate,omitempty"`
}

func appointmentViews(items []models.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(items))
	for _, a := range items {
		v := AppointmentView{Appointment: a, FormattedDate: utils.FormatDate(a.AppointmentDate)}
		if a.Doctor.Name != "" {
			v.DoctorName = utils.FormatDoctorName(a.Doctor.Name)
		}
		out = append(out, v)
	}
	return out
}

// mapResult converts the data of a successful result.
func mapResult[T, U any](res models.Result[T], fn func(T) U) models.Result[U] {
	out := models.Result[U]{
		Success:          res.Success,
		Message:          res.Message,
		Status:           res.Status,
		RequiresApproval: res.RequiresApproval,
	}
	if res.Success {
		out.Data = fn(res.Data)
	}
	return out
}

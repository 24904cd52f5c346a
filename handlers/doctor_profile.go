package handlers

import (
	"net/http"

	"medicare/cron"
	"medicare/models"
	"medicare/services/deletion"
	"medicare/services/doctor"
	appointmentstore "medicare/store/appointment"
	"medicare/store/session"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
)

// DoctorProfileHandler serves the doctor's own views under /doctor/profile.
type DoctorProfileHandler struct {
	Doctors      doctor.DoctorService
	Deletions    deletion.DeletionRequestService
	Appointments *appointmentstore.Store
	Session      *session.Store
	Reminders    cron.Scheduler
}

func NewDoctorProfileHandler(d doctor.DoctorService, del deletion.DeletionRequestService, a *appointmentstore.Store, s *session.Store) *DoctorProfileHandler {
	return &DoctorProfileHandler{Doctors: d, Deletions: del, Appointments: a, Session: s}
}

func (h *DoctorProfileHandler) doctorID(c *gin.Context) (string, bool) {
	id := h.Session.Snapshot().User.ID()
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Doctor ID not available", "")
		return "", false
	}
	return id, true
}

// GetProfileHandler handles GET /doctor/profile.
func (h *DoctorProfileHandler) GetProfileHandler(c *gin.Context) {
	id, ok := h.doctorID(c)
	if !ok {
		return
	}
	res := h.Doctors.GetDoctorByID(c.Request.Context(), id)
	respond(c, mapResult(res, func(d models.Doctor) DoctorView {
		return DoctorView{Doctor: d, DisplayName: utils.FormatDoctorName(d.Name)}
	}))
}

// UpdateProfileHandler handles PUT /doctor/profile. List fields such as
// qualifications, experiences and timeSlots may be sent as JSON arrays.
func (h *DoctorProfileHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := h.doctorID(c)
	if !ok {
		return
	}
	update, ok := readProfileUpdate(c)
	if !ok {
		return
	}
	if slots, ok := update.Fields["timeSlots"].([]any); ok {
		for _, raw := range slots {
			slot, _ := raw.(map[string]any)
			form := validation.TimeSlotForm{}
			form.Day, _ = slot["day"].(string)
			form.StartTime, _ = slot["startTime"].(string)
			form.EndTime, _ = slot["endTime"].(string)
			if err := validation.Struct(form); err != nil {
				utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
				return
			}
		}
	}
	respond(c, h.Doctors.UpdateDoctor(c.Request.Context(), id, update.Fields, update.Photo))
}

// AppointmentsHandler handles GET /doctor/profile/appointments.
func (h *DoctorProfileHandler) AppointmentsHandler(c *gin.Context) {
	id, ok := h.doctorID(c)
	if !ok {
		return
	}
	res := h.Appointments.FetchDoctorAppointments(c.Request.Context(), id)
	respond(c, mapResult(res, appointmentViews))
}

// UpdateAppointmentStatusHandler handles PUT /doctor/profile/appointments/:id/status.
func (h *DoctorProfileHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var form validation.StatusForm
	if !bind(c, &form) {
		return
	}
	res := h.Appointments.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), form.Status)
	if res.Success && endsReminder(form.Status) {
		cancelReminder(c, h.Reminders, c.Param("id"))
	}
	respond(c, res)
}

// CreateDeletionRequestHandler handles POST /doctor/profile/deletion-request.
func (h *DoctorProfileHandler) CreateDeletionRequestHandler(c *gin.Context) {
	createDeletionRequest(c, h.Deletions)
}

// DeletionRequestStatusHandler handles GET /doctor/profile/deletion-request.
func (h *DoctorProfileHandler) DeletionRequestStatusHandler(c *gin.Context) {
	respond(c, h.Deletions.GetDeletionRequestStatus(c.Request.Context()))
}

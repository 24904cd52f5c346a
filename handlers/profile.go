package handlers

import (
	"net/http"

	"medicare/cron"
	"medicare/models"
	"medicare/services/deletion"
	"medicare/services/user"
	appointmentstore "medicare/store/appointment"
	"medicare/store/session"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the patient profile views under /profile.
type ProfileHandler struct {
	Users        user.UserService
	Deletions    deletion.DeletionRequestService
	Appointments *appointmentstore.Store
	Session      *session.Store
	Reminders    cron.Scheduler
}

func NewProfileHandler(u user.UserService, d deletion.DeletionRequestService, a *appointmentstore.Store, s *session.Store) *ProfileHandler {
	return &ProfileHandler{Users: u, Deletions: d, Appointments: a, Session: s}
}

// currentUserID returns the logged-in user's id or writes an error.
func currentUserID(c *gin.Context, s *session.Store) (string, bool) {
	id := s.Snapshot().User.ID()
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "User information not available", "")
		return "", false
	}
	return id, true
}

// GetProfileHandler handles GET /profile. The fresh profile replaces the one
// held by the session.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	id, ok := currentUserID(c, h.Session)
	if !ok {
		return
	}
	res := h.Users.GetProfile(c.Request.Context(), id)
	if res.Success && res.Data != nil {
		h.Session.UpdateUser(res.Data)
	}
	respond(c, res)
}

// UpdateProfileHandler handles PUT /profile with JSON fields or a multipart
// form carrying an optional photo.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := currentUserID(c, h.Session)
	if !ok {
		return
	}
	update, ok := readProfileUpdate(c)
	if !ok {
		return
	}
	res := h.Users.UpdateProfile(c.Request.Context(), id, update)
	if res.Success && res.Data != nil {
		h.Session.UpdateUser(res.Data)
	}
	respond(c, res)
}

// readProfileUpdate collects profile fields from the request.
func readProfileUpdate(c *gin.Context) (user.ProfileUpdate, bool) {
	var update user.ProfileUpdate
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid form data", err.Error())
			return update, false
		}
		update.Fields = map[string]any{}
		for k, v := range c.Request.MultipartForm.Value {
			if len(v) > 0 {
				update.Fields[k] = v[0]
			}
		}
		photo, err := uploadedPhoto(c)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "There was an error processing the selected image.", err.Error())
			return update, false
		}
		update.Photo = photo
		return update, true
	}
	if err := c.ShouldBindJSON(&update.Fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return update, false
	}
	return update, true
}

// UpdatePasswordHandler handles PUT /profile/password.
func (h *ProfileHandler) UpdatePasswordHandler(c *gin.Context) {
	var form validation.PasswordForm
	if !bind(c, &form) {
		return
	}
	res := h.Users.UpdatePassword(c.Request.Context(), form.Update())
	if res.Success {
		res.Message = res.MessageOr("Password updated successfully")
	} else {
		res.Message = res.MessageOr("Failed to update password")
	}
	respond(c, res)
}

// AppointmentsHandler handles GET /profile/appointments.
func (h *ProfileHandler) AppointmentsHandler(c *gin.Context) {
	res := h.Appointments.FetchPatientAppointments(c.Request.Context())
	respond(c, mapResult(res, appointmentViews))
}

// CancelAppointmentHandler handles PUT /profile/appointments/:id/cancel.
func (h *ProfileHandler) CancelAppointmentHandler(c *gin.Context) {
	res := h.Appointments.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), models.AppointmentCancelled)
	if res.Success {
		cancelReminder(c, h.Reminders, c.Param("id"))
	}
	respond(c, res)
}

// DeleteAccountHandler handles DELETE /profile. Deletion is queued for an
// administrator.
func (h *ProfileHandler) DeleteAccountHandler(c *gin.Context) {
	id, ok := currentUserID(c, h.Session)
	if !ok {
		return
	}
	res := h.Users.DeleteProfile(c.Request.Context(), id)
	getLogger(c).Info("Account deletion requested", zap.String("userID", id), zap.Bool("success", res.Success))
	respond(c, res)
}

// CreateDeletionRequestHandler handles POST /profile/deletion-request.
func (h *ProfileHandler) CreateDeletionRequestHandler(c *gin.Context) {
	createDeletionRequest(c, h.Deletions)
}

// DeletionRequestStatusHandler handles GET /profile/deletion-request.
func (h *ProfileHandler) DeletionRequestStatusHandler(c *gin.Context) {
	respond(c, h.Deletions.GetDeletionRequestStatus(c.Request.Context()))
}

func createDeletionRequest(c *gin.Context, svc deletion.DeletionRequestService) {
	var form validation.DeletionForm
	if !bind(c, &form) {
		return
	}
	res := svc.CreateDeletionRequest(c.Request.Context(), form.Reason)
	if res.Success {
		res.Message = res.MessageOr("Deletion request submitted. An administrator will review it.")
		c.JSON(http.StatusCreated, res)
		return
	}
	respond(c, res)
}

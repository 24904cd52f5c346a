package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/admin"
	"medicare/services/deletion"
	"medicare/services/notification"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the admin console under /admin.
type AdminHandler struct {
	Admin     admin.AdminService
	Deletions deletion.DeletionRequestService
	Notifier  notification.Notifier
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(a admin.AdminService, d deletion.DeletionRequestService, n notification.Notifier) *AdminHandler {
	if n == nil {
		n = notification.Nop{}
	}
	return &AdminHandler{Admin: a, Deletions: d, Notifier: n}
}

// announce reports the outcome of an admin mutation through the notifier.
func announce[T any](n notification.Notifier, res models.Result[T], ok, failed string) models.Result[T] {
	if res.Success {
		res.Message = res.MessageOr(ok)
		n.Success(res.Message)
	} else {
		res.Message = res.MessageOr(failed)
		n.Error(res.Message)
	}
	return res
}

// DashboardHandler handles GET /admin.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	respond(c, h.Admin.GetDashboardStats(c.Request.Context()))
}

// DoctorsHandler handles GET /admin/doctors.
func (h *AdminHandler) DoctorsHandler(c *gin.Context) {
	respond(c, mapResult(h.Admin.GetAllDoctors(c.Request.Context()), doctorViews))
}

// UpdateDoctorStatusHandler handles PUT /admin/doctors/:id/status.
func (h *AdminHandler) UpdateDoctorStatusHandler(c *gin.Context) {
	var form validation.DoctorStatusForm
	if !bind(c, &form) {
		return
	}
	res := h.Admin.UpdateDoctorStatus(c.Request.Context(), c.Param("id"), models.StatusUpdate{Status: form.Status})
	respond(c, announce(h.Notifier, res, "Doctor status updated successfully", "Failed to update doctor status"))
}

// DeleteDoctorHandler handles DELETE /admin/doctors/:id.
func (h *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	res := h.Admin.DeleteDoctor(c.Request.Context(), c.Param("id"))
	respond(c, announce(h.Notifier, res, "Doctor deleted successfully", "Failed to delete doctor"))
}

// UsersHandler handles GET /admin/users.
func (h *AdminHandler) UsersHandler(c *gin.Context) {
	respond(c, h.Admin.GetAllUsers(c.Request.Context()))
}

// DeleteUserHandler handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	res := h.Admin.DeleteUser(c.Request.Context(), c.Param("id"))
	respond(c, announce(h.Notifier, res, "User deleted successfully", "Failed to delete user"))
}

// AppointmentsHandler handles GET /admin/appointments.
func (h *AdminHandler) AppointmentsHandler(c *gin.Context) {
	respond(c, mapResult(h.Admin.GetAllAppointments(c.Request.Context()), appointmentViews))
}

// UpdateAppointmentStatusHandler handles PUT /admin/appointments/:id/status.
func (h *AdminHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var form validation.StatusForm
	if !bind(c, &form) {
		return
	}
	res := h.Admin.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), form.Status)
	respond(c, announce(h.Notifier, res, "Appointment status updated successfully", "Failed to update appointment status"))
}

// DeleteAppointmentHandler handles DELETE /admin/appointments/:id.
func (h *AdminHandler) DeleteAppointmentHandler(c *gin.Context) {
	res := h.Admin.DeleteAppointment(c.Request.Context(), c.Param("id"))
	respond(c, announce(h.Notifier, res, "Appointment deleted successfully", "Failed to delete appointment"))
}

// DeletionRequestsHandler handles GET /admin/deletion-requests.
func (h *AdminHandler) DeletionRequestsHandler(c *gin.Context) {
	respond(c, h.Deletions.GetAllDeletionRequests(c.Request.Context()))
}

// ProcessDeletionRequestHandler handles PUT /admin/deletion-requests/:id.
func (h *AdminHandler) ProcessDeletionRequestHandler(c *gin.Context) {
	var form validation.DeletionDecisionForm
	if !bind(c, &form) {
		return
	}
	decision := models.DeletionDecision{Status: form.Status, AdminNotes: form.AdminNotes}
	res := h.Deletions.ProcessDeletionRequest(c.Request.Context(), c.Param("id"), decision)
	getLogger(c).Info("Deletion request processed",
		zap.String("requestID", c.Param("id")),
		zap.String("status", form.Status),
		zap.Bool("success", res.Success))
	respond(c, announce(h.Notifier, res, "Deletion request "+form.Status, "Failed to process deletion request"))
}

// HealthHandler handles GET /health with the latest dependency checks.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()
	status := "ok"
	if !health.Healthy {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "message": "Hi, I'm the MediCare console", "health": health})
}

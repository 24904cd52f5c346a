package handlers

import (
	"net/http"
	"strconv"

	"medicare/cron"
	"medicare/models"
	"medicare/services/doctor"
	appointmentstore "medicare/store/appointment"
	reviewstore "medicare/store/review"
	"medicare/store/session"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the public doctor views plus booking and reviews from
// a doctor's page.
type DoctorHandler struct {
	Doctors      doctor.DoctorService
	Reviews      *reviewstore.Store
	Appointments *appointmentstore.Store
	Session      *session.Store
	Reminders    cron.Scheduler
}

func NewDoctorHandler(d doctor.DoctorService, r *reviewstore.Store, a *appointmentstore.Store, s *session.Store) *DoctorHandler {
	return &DoctorHandler{Doctors: d, Reviews: r, Appointments: a, Session: s}
}

// ListDoctorsHandler handles GET /doctors?query=.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	res := h.Doctors.GetAllDoctors(c.Request.Context(), c.Query("query"))
	respond(c, mapResult(res, doctorViews))
}

// TopDoctorsHandler handles GET /doctors/top?limit=.
func (h *DoctorHandler) TopDoctorsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	res := h.Doctors.GetTopRatedDoctors(c.Request.Context(), limit)
	respond(c, mapResult(res, doctorViews))
}

// GetDoctorHandler handles GET /doctors/:id and loads the doctor's reviews
// into the review store.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	res := h.Doctors.GetDoctorByID(c.Request.Context(), id)
	if !res.Success {
		respond(c, res)
		return
	}
	reviews := h.Reviews.FetchDoctorReviews(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"doctor":      DoctorView{Doctor: res.Data, DisplayName: utils.FormatDoctorName(res.Data.Name)},
			"reviews":     reviews.Data,
			"reviewError": h.Reviews.Snapshot().Error,
		},
	})
}

// ReviewsHandler handles GET /doctors/:id/reviews.
func (h *DoctorHandler) ReviewsHandler(c *gin.Context) {
	respond(c, h.Reviews.FetchDoctorReviews(c.Request.Context(), c.Param("id")))
}

// CreateReviewHandler handles POST /doctors/:id/reviews.
func (h *DoctorHandler) CreateReviewHandler(c *gin.Context) {
	if !h.Session.IsAuthenticated() {
		utils.JSONError(c, http.StatusUnauthorized, "You must be logged in to write a review", "")
		return
	}
	var form validation.ReviewForm
	if !bind(c, &form) {
		return
	}
	form.Doctor = c.Param("id")
	res := h.Reviews.CreateReview(c.Request.Context(), form.Request())
	if res.Success {
		c.JSON(http.StatusCreated, res)
		return
	}
	respond(c, res)
}

// UpdateReviewHandler handles PUT /reviews/:id.
func (h *DoctorHandler) UpdateReviewHandler(c *gin.Context) {
	if !h.Session.IsAuthenticated() {
		utils.JSONError(c, http.StatusUnauthorized, "You must be logged in to update a review", "")
		return
	}
	var form validation.ReviewForm
	if !bind(c, &form) {
		return
	}
	respond(c, h.Reviews.UpdateReview(c.Request.Context(), c.Param("id"), form.Request()))
}

// DeleteReviewHandler handles DELETE /reviews/:id.
func (h *DoctorHandler) DeleteReviewHandler(c *gin.Context) {
	if !h.Session.IsAuthenticated() {
		utils.JSONError(c, http.StatusUnauthorized, "You must be logged in to delete a review", "")
		return
	}
	respond(c, h.Reviews.DeleteReview(c.Request.Context(), c.Param("id")))
}

// BookAppointmentHandler handles POST /doctors/:id/appointments. Only
// patients may book.
func (h *DoctorHandler) BookAppointmentHandler(c *gin.Context) {
	st := h.Session.Snapshot()
	if !st.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Please login to book an appointment", "redirect": "/login"})
		return
	}
	if st.Role != models.RolePatient {
		utils.JSONError(c, http.StatusForbidden, "Only patients can book appointments", "")
		return
	}
	form := validation.BookingForm{Doctor: c.Param("id")}
	if !bind(c, &form) {
		return
	}
	form.Doctor = c.Param("id")
	res := h.Appointments.CreateAppointment(c.Request.Context(), form.Request())
	if res.Success {
		scheduleReminder(c, h.Reminders, res.Data)
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": res.Message, "data": res.Data, "redirect": "/profile"})
		return
	}
	respond(c, res)
}

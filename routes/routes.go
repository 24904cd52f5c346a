package routes

import (
	"net/http"
	"time"

	"medicare/guard"
	"medicare/handlers"
	"medicare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, registration and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/login", hb.Auth.SessionHandler)
	r.POST("/login", hb.Auth.LoginHandler)
	r.POST("/register", hb.Auth.RegisterHandler)
	r.POST("/logout", hb.Auth.LogoutHandler)
}

// RegisterDoctorRoutes registers the public doctor views. Booking and review
// writes check the session inside the handlers.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", hb.Doctors.ListDoctorsHandler)
		doctors.GET("/top", hb.Doctors.TopDoctorsHandler)
		doctors.GET("/:id", hb.Doctors.GetDoctorHandler)
		doctors.GET("/:id/reviews", hb.Doctors.ReviewsHandler)
		doctors.POST("/:id/reviews", hb.Doctors.CreateReviewHandler)
		doctors.POST("/:id/appointments", hb.Doctors.BookAppointmentHandler)
	}
	r.PUT("/reviews/:id", hb.Doctors.UpdateReviewHandler)
	r.DELETE("/reviews/:id", hb.Doctors.DeleteReviewHandler)
}

// RegisterProfileRoutes registers the patient profile views.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	profile := r.Group("/profile")
	{
		profile.GET("", hb.Profile.GetProfileHandler)
		profile.PUT("", hb.Profile.UpdateProfileHandler)
		profile.DELETE("", hb.Profile.DeleteAccountHandler)
		profile.PUT("/password", hb.Profile.UpdatePasswordHandler)
		profile.GET("/appointments", hb.Profile.AppointmentsHandler)
		profile.PUT("/appointments/:id/cancel", hb.Profile.CancelAppointmentHandler)
		profile.GET("/deletion-request", hb.Profile.DeletionRequestStatusHandler)
		profile.POST("/deletion-request", hb.Profile.CreateDeletionRequestHandler)
	}
}

// RegisterDoctorProfileRoutes registers the doctor's own views.
func RegisterDoctorProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	dp := r.Group("/doctor/profile")
	{
		dp.GET("", hb.DoctorProfile.GetProfileHandler)
		dp.PUT("", hb.DoctorProfile.UpdateProfileHandler)
		dp.PUT("/password", hb.Profile.UpdatePasswordHandler)
		dp.GET("/appointments", hb.DoctorProfile.AppointmentsHandler)
		dp.PUT("/appointments/:id/status", hb.DoctorProfile.UpdateAppointmentStatusHandler)
		dp.GET("/deletion-request", hb.DoctorProfile.DeletionRequestStatusHandler)
		dp.POST("/deletion-request", hb.DoctorProfile.CreateDeletionRequestHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("", hb.Admin.DashboardHandler)
		adminGroup.GET("/doctors", hb.Admin.DoctorsHandler)
		adminGroup.PUT("/doctors/:id/status", hb.Admin.UpdateDoctorStatusHandler)
		adminGroup.DELETE("/doctors/:id", hb.Admin.DeleteDoctorHandler)
		adminGroup.GET("/users", hb.Admin.UsersHandler)
		adminGroup.DELETE("/users/:id", hb.Admin.DeleteUserHandler)
		adminGroup.GET("/appointments", hb.Admin.AppointmentsHandler)
		adminGroup.PUT("/appointments/:id/status", hb.Admin.UpdateAppointmentStatusHandler)
		adminGroup.DELETE("/appointments/:id", hb.Admin.DeleteAppointmentHandler)
		adminGroup.GET("/deletion-requests", hb.Admin.DeletionRequestsHandler)
		adminGroup.PUT("/deletion-requests/:id", hb.Admin.ProcessDeletionRequestHandler)
	}
}

// RegisterNotificationRoutes exposes the notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/notifications", hb.Notifications.ListHandler)
	r.DELETE("/notifications", hb.Notifications.DismissHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "MediCare console"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The guard runs before every route and is evaluated per request.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, g *guard.Guard) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RoleBasedAuthMiddleware(g))

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterDoctorProfileRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}

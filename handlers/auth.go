package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/store/session"
	"medicare/utils"
	"medicare/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct {
	Session *session.Store
}

func NewAuthHandler(s *session.Store) *AuthHandler {
	return &AuthHandler{Session: s}
}

// landingPath is where a freshly logged-in user is sent.
func landingPath(role models.Role) string {
	switch role {
	case models.RoleDoctor:
		return "/doctor/profile"
	case models.RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}

// SessionHandler handles GET /login and reports the current session.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	st := h.Session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"authenticated": st.Authenticated(),
		"role":          st.Role,
		"user":          st.User,
		"isLoading":     st.IsLoading,
		"error":         st.Error,
	})
}

// LoginHandler handles POST /login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var form validation.LoginForm
	if !bind(c, &form) {
		return
	}
	res := h.Session.Login(c.Request.Context(), form.Credentials())
	if !res.Success {
		respond(c, res)
		return
	}
	role := h.Session.Snapshot().Role
	getLogger(c).Info("Console login", zap.String("role", role.String()))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  res.MessageOr("Login successful!"),
		"role":     role,
		"data":     res.Data,
		"redirect": landingPath(role),
	})
}

// RegisterHandler handles POST /register, accepting JSON or multipart with an
// optional photo.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	if h.Session.IsAuthenticated() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	var form validation.RegisterForm
	if !bind(c, &form) {
		return
	}
	data := form.Data()
	photo, err := uploadedPhoto(c)
	if err != nil {
		getLogger(c).Warn("Unreadable registration photo", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "There was an error processing the selected image. Please try another image or register without a photo.", err.Error())
		return
	}
	data.Photo = photo

	res := h.Session.Register(c.Request.Context(), data)
	if res.Success {
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registration successful! Please login.", "redirect": "/login"})
		return
	}
	respond(c, res)
}

// LogoutHandler handles POST /logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully", "redirect": "/login"})
}

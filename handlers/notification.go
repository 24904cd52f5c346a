package handlers

import (
	"net/http"

	"medicare/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification feed.
type NotificationHandler struct {
	Feed *notification.DefaultNotificationService
}

func NewNotificationHandler(feed *notification.DefaultNotificationService) *NotificationHandler {
	return &NotificationHandler{Feed: feed}
}

// ListHandler handles GET /notifications.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Feed.Recent()})
}

// DismissHandler handles DELETE /notifications and returns what was dismissed.
func (h *NotificationHandler) DismissHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.Feed.Drain()})
}

package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP identifies the caller for logging and rate limiting. Forwarding
// headers are honoured only when the direct peer is loopback, which is the
// case behind a local dev-server proxy.
func clientIP(c *gin.Context) string {
	peer := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	if ip := net.ParseIP(peer); ip == nil || !ip.IsLoopback() {
		return peer
	}

	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

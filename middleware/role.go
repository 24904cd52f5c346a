package middleware

import (
	"net/http"

	"medicare/guard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleBasedAuthMiddleware runs the guard on every request and redirects
// navigations the session may not see.
func RoleBasedAuthMiddleware(g *guard.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.Check(c.Request.URL.Path)
		if decision.Outcome == guard.Render {
			c.Next()
			return
		}
		zap.L().Debug("Navigation redirected",
			zap.String("path", c.Request.URL.Path),
			zap.String("outcome", decision.Outcome.String()),
			zap.String("location", decision.Location))
		c.Redirect(http.StatusFound, decision.Location)
		c.Abort()
	}
}

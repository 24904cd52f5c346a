package middleware

import (
	"time"

	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags each console request with an id and a request-scoped
// logger stored under "logger", then logs the outcome.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(utils.RequestIDHeader, requestID)

		logger := base.With(zap.String("requestID", requestID))
		c.Set("logger", logger)
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", clientIP(c)),
			zap.Duration("latency", time.Since(start)))
	}
}

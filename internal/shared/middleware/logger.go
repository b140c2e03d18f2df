package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/infrastructure/metrics"
	"bookstore-api/pkg/logger"
)

// Logger writes one access log line per request and records request metrics.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status, latency)

		log.Info("HTTP Request", map[string]interface{}{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}

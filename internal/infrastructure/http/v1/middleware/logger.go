package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"roomstock/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status, and makes
// the request-scoped logger available to downstream code via context.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		reqLog := log.With("request_id", c.GetString("request_id"))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLog))

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		reqLog.Infow("http request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}

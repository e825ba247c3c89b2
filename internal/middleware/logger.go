package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns each request an ID, propagates it through the
// request context and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}

// Logger logs each HTTP request with method, path, status and latency.
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}

		entry := log.WithContext(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request completed", fields...)
		case c.Writer.Status() >= 400:
			entry.Warn("request completed", fields...)
		default:
			entry.Info("request completed", fields...)
		}
	}
}

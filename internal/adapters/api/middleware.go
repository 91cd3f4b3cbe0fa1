package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skycast.app/internal/ports"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// requestIDMiddleware propagates the caller's request ID or assigns a new one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// requestLogger logs every served request and counts it in the HTTP metrics
func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(route, c.Request.Method, status)
		}

		s.logger.Info("HTTP request served",
			ports.F("request_id", c.GetString(requestIDKey)),
			ports.F("method", c.Request.Method),
			ports.F("route", route),
			ports.F("status", status),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

package middleware

import (
	"garage-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestContext assigns a request id and records the caller's address and
// user agent, which the activity log picks up from the context.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Set(service.ContextKeyClientIP, c.ClientIP())
		c.Set(service.ContextKeyUserAgent, c.Request.UserAgent())
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

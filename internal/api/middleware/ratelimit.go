package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"garage-backend/internal/api/response"
	"garage-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Limiter counts hits per key within a fixed window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}

// RateLimit rejects a client IP with 429 once it exceeds limit requests per
// window within scope. Limiter failures let the request through.
func RateLimit(limiter Limiter, scope string, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c, scope+":"+c.ClientIP(), limit, window)
		if err != nil {
			logger.WithContext(c).WithError(err).WithField("scope", scope).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}

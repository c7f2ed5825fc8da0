package middleware

import (
	"net/http"

	"garage-backend/internal/api/response"
	"garage-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 response and logs it
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithContext(c).WithFields(map[string]interface{}{
					"panic": err,
					"path":  c.Request.URL.Path,
				}).Error("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
			}
		}()
		c.Next()
	}
}

package handlers

import (
	"strconv"

	"garage-backend/internal/api/response"
	"garage-backend/internal/auth"
	apperrors "garage-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// requireTenant reads the caller's tenant set by the auth middleware
func requireTenant(c *gin.Context) (int64, bool) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		response.Error(c, apperrors.ErrMissingToken)
		return 0, false
	}
	return tenantID, true
}

func requireUser(c *gin.Context) (int64, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		response.Error(c, apperrors.ErrMissingToken)
		return 0, false
	}
	return userID, true
}

// requireRecipient returns the tenant and username that own the caller's notifications
func requireRecipient(c *gin.Context) (int64, string, bool) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return 0, "", false
	}
	username, ok := auth.GetUsername(c)
	if !ok || username == "" {
		response.Error(c, apperrors.ErrMissingToken)
		return 0, "", false
	}
	return tenantID, username, true
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperrors.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// bindOptionalJSON decodes a body that callers may omit entirely
func bindOptionalJSON(c *gin.Context, req interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return response.BindJSON(c, req)
}

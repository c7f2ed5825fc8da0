package auth

import (
	"net/http"
	"strings"

	"garage-backend/internal/api/response"
	apperrors "garage-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new account
// @Summary Register account
// @Description Create an account with its own tenant. The password is stored as a bcrypt hash.
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 201 {object} RegisterResponse "Account created"
// @Failure 400 {object} response.ErrorResponse "Invalid request body"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /auth [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and returns a token
// @Summary Log in
// @Description Returns {result:true, token} on success and {result:false} on bad credentials
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} LoginResponse "Login result"
// @Failure 403 {object} response.ErrorResponse "Account is inactive"
// @Router /auth/control [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AdminLogin checks credentials of an admin account
// @Summary Admin log in
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Username and password"
// @Success 200 {object} LoginResponse "Login result"
// @Failure 403 {object} response.ErrorResponse "Not an admin or inactive"
// @Router /auth/admin/control [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req CredentialsRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.service.AdminLogin(c, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Refresh reissues a token
// @Summary Refresh authentication token
// @Description Reissue a token from a signature-valid bearer token, even an expired one
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} RefreshResponse "New token"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Router /auth/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		response.Error(c, apperrors.ErrMissingToken)
		return
	}

	result, err := h.service.Refresh(tokenString)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ChangePassword replaces the caller's password
// @Summary Change password
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse "Password changed"
// @Failure 400 {object} response.ErrorResponse "Current password is incorrect"
// @Security BearerAuth
// @Router /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Error(c, apperrors.ErrMissingToken)
		return
	}

	var req ChangePasswordRequest
	if !response.BindJSON(c, &req) {
		return
	}

	result, err := h.service.ChangePassword(c, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout records the logout
// @Summary Logout user
// @Description Tokens are stateless; the call only records an audit entry
// @Tags authentication
// @Produce json
// @Success 200 {object} MessageResponse "Successfully logged out"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	tenantID, ok := GetTenantID(c)
	if !ok {
		response.Error(c, apperrors.ErrMissingToken)
		return
	}

	c.JSON(http.StatusOK, h.service.Logout(c, tenantID))
}

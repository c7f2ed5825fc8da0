package auth

import (
	"context"
	"strings"

	"garage-backend/internal/api/response"
	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by RequireAuth
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyTenantID = "tenant_id"
	ContextKeyRole     = "role"
	ContextKeyClaims   = "auth_claims"
)

// TokenValidator parses a bearer token into its claims
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// MembershipChecker reports whether an account currently holds an active membership
type MembershipChecker interface {
	MembershipActive(ctx context.Context, userID int64) (bool, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrMissingToken)
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			response.Error(c, apperrors.NewAuthenticationError("invalid authorization header format"))
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			response.Error(c, err)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.Error(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyTenantID, claims.TenantID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole rejects callers whose token does not carry role
func (m *AuthMiddleware) RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetRole(c)
		if !ok {
			response.Error(c, apperrors.ErrMissingToken)
			return
		}
		if current != role {
			response.Error(c, apperrors.NewAuthorizationError(string(role)+" role required"))
			return
		}
		c.Next()
	}
}

// RequireActiveMembership rejects callers without an active, unexpired membership.
// Admins are let through.
func (m *AuthMiddleware) RequireActiveMembership(lookup MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := GetRole(c); role == models.UserRoleAdmin {
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			response.Error(c, apperrors.ErrMissingToken)
			return
		}

		active, err := lookup.MembershipActive(c, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		if !active {
			logger.WithContext(c).Debug("Rejected request without active membership")
			response.Error(c, apperrors.ErrMembershipExpired)
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetTenantID returns the tenant of the authenticated caller. Handlers take
// the tenant from here and nowhere else.
func GetTenantID(c *gin.Context) (int64, bool) {
	tenantID, exists := c.Get(ContextKeyTenantID)
	if !exists {
		return 0, false
	}

	id, ok := tenantID.(int64)
	return id, ok
}

// GetRole is a helper function to extract the caller's role from context
func GetRole(c *gin.Context) (models.UserRole, bool) {
	role, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}

	r, ok := role.(models.UserRole)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

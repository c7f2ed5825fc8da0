package handlers_test

import (
	"garage-backend/internal/auth"
	"garage-backend/internal/database/models"
	"garage-backend/internal/testutils"

	"github.com/gin-gonic/gin"
)

const (
	testTenant   int64 = 12345678
	testUserID   int64 = 1
	testUsername       = "usta"
)

// withPrincipal sets the context keys RequireAuth would set for a valid token
func withPrincipal(userID int64, username string, tenantID int64, role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, userID)
		c.Set(auth.ContextKeyUsername, username)
		c.Set(auth.ContextKeyTenantID, tenantID)
		c.Set(auth.ContextKeyRole, role)
		c.Next()
	}
}

func authenticatedRouter() *testutils.HTTPTestSuite {
	suite := testutils.SetupHTTPTest()
	suite.Router.Use(withPrincipal(testUserID, testUsername, testTenant, models.UserRoleUser))
	return suite
}

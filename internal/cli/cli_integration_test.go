//go:build integration

package cli

import (
	"testing"
	"time"

	"garage-backend/internal/config"
	"garage-backend/internal/database/models"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CLIIntegrationTestSuite struct {
	suite.Suite
	base            *testutils.BaseTestSuite
	originalConnect func(int) (*gorm.DB, *config.Config, error)
	originalClose   func(*gorm.DB)
}

func (s *CLIIntegrationTestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.originalConnect, s.originalClose = connect, closeDB

	// the container handle is shared by the whole run and must stay open
	connect = func(int) (*gorm.DB, *config.Config, error) {
		return s.base.DB, s.base.Config, nil
	}
	closeDB = func(*gorm.DB) {}
}

func (s *CLIIntegrationTestSuite) TearDownSuite() {
	connect, closeDB = s.originalConnect, s.originalClose
}

func (s *CLIIntegrationTestSuite) SetupTest() { s.base.CleanTestDB() }

func (s *CLIIntegrationTestSuite) TestMigrate() {
	out, err := run("migrate")

	s.Require().NoError(err)
	s.Contains(out, "schema up to date")
}

func (s *CLIIntegrationTestSuite) TestSeed_IsIdempotent() {
	out, err := run("seed", "--dir", "../../scripts/data")
	s.Require().NoError(err)
	s.Equal("seeded 2 users, 3 stock items\n", out)

	out, err = run("seed", "--dir", "../../scripts/data")
	s.Require().NoError(err)
	s.Equal("seeded 0 users, 0 stock items\n", out)
}

func (s *CLIIntegrationTestSuite) TestUserCreateAndDisable() {
	_, err := run("user", "create", "--username", "yeni", "--password", "gizli123", "--admin")
	s.Require().NoError(err)

	var user models.User
	s.Require().NoError(s.base.DB.Where("username = ?", "yeni").First(&user).Error)
	s.Equal(models.UserRoleAdmin, user.Role)
	s.True(user.IsActive)
	s.GreaterOrEqual(user.TenantID, int64(10000000))

	out, err := run("user", "set-active", "yeni", "--active=false")
	s.Require().NoError(err)
	s.Equal("disabled yeni\n", out)

	s.Require().NoError(s.base.DB.First(&user, user.ID).Error)
	s.False(user.IsActive)
}

func (s *CLIIntegrationTestSuite) TestUserCreate_DuplicateUsername() {
	_, err := run("user", "create", "--username", "yeni", "--password", "gizli123")
	s.Require().NoError(err)

	_, err = run("user", "create", "--username", "yeni", "--password", "baska")
	s.Error(err)
}

func (s *CLIIntegrationTestSuite) TestLogsPrune() {
	const tenant = int64(12345678)
	entries := []models.ActivityLog{
		{TenantModel: models.TenantModel{TenantID: tenant}, Username: "usta", Action: models.ActionLogin, Timestamp: time.Now().AddDate(0, -3, 0)},
		{TenantModel: models.TenantModel{TenantID: tenant}, Username: "usta", Action: models.ActionLogin, Timestamp: time.Now()},
		{TenantModel: models.TenantModel{TenantID: 87654321}, Username: "diger", Action: models.ActionLogin, Timestamp: time.Now().AddDate(-1, 0, 0)},
	}
	s.Require().NoError(s.base.DB.Create(&entries).Error)

	out, err := run("logs", "prune", "--tenant", "12345678", "--days", "30")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "deleted 1 entries for tenant 12345678\n", out)

	var remaining int64
	s.Require().NoError(s.base.DB.Model(&models.ActivityLog{}).Count(&remaining).Error)
	s.Equal(int64(2), remaining)
}

func TestCLIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CLIIntegrationTestSuite))
}

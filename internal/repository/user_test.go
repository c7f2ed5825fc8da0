//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"garage-backend/internal/database/models"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository and the MembershipRequestRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	requests      *MembershipRequestRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.requests = NewMembershipRequestRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateDuplicateUsername tests the unique username constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateUsername() {
	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithUsername("usta")))

	err := suite.repo.Create(suite.factories.User.WithUsername("usta"))

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestExistenceChecks tests username and tenant lookups
func (suite *UserRepositoryTestSuite) TestExistenceChecks() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	exists, err := suite.repo.UsernameExists(user.Username)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.TenantIDExists(user.TenantID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.TenantIDExists(user.TenantID + 1)
	suite.NoError(err)
	suite.False(exists)
}

// TestTenantIDExistsAfterUserDeletion tests that orphaned tenant rows keep the id taken
func (suite *UserRepositoryTestSuite) TestTenantIDExistsAfterUserDeletion() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))
	card := suite.factories.Card.Create(user.TenantID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(card).Error)

	suite.Require().NoError(suite.repo.Delete(user.ID))

	exists, err := suite.repo.TenantIDExists(user.TenantID)
	suite.NoError(err)
	suite.True(exists)
}

// TestUpdateKeepsFalse tests that deactivation is persisted
func (suite *UserRepositoryTestSuite) TestUpdateKeepsFalse() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Update(user.ID, map[string]interface{}{"is_active": false}))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.False(found.IsActive)
}

// TestApproveMembershipRequest tests that approval extends membership atomically
func (suite *UserRepositoryTestSuite) TestApproveMembershipRequest() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))
	request := &models.MembershipRequest{
		TenantModel: models.TenantModel{TenantID: user.TenantID},
		UserID:      user.ID,
		Username:    user.Username,
		Months:      3,
		Status:      models.MembershipRequestPending,
	}
	suite.Require().NoError(suite.requests.Create(request))

	pending, err := suite.requests.HasPending(user.ID)
	suite.NoError(err)
	suite.True(pending)

	end := time.Now().AddDate(0, 3, 0).UTC().Truncate(time.Second)
	suite.NoError(suite.requests.Approve(request.ID, "approved", end))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.MembershipEndDate)
	suite.WithinDuration(end, *found.MembershipEndDate, time.Second)

	pending, err = suite.requests.HasPending(user.ID)
	suite.NoError(err)
	suite.False(pending)

	// A reviewed request cannot be reviewed again
	suite.ErrorIs(suite.requests.Reject(request.ID, "late"), gorm.ErrRecordNotFound)
}

// TestDeleteCascadesRequests tests that removing a user removes their requests
func (suite *UserRepositoryTestSuite) TestDeleteCascadesRequests() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))
	request := &models.MembershipRequest{
		TenantModel: models.TenantModel{TenantID: user.TenantID},
		UserID:      user.ID,
		Username:    user.Username,
		Months:      1,
		Status:      models.MembershipRequestPending,
	}
	suite.Require().NoError(suite.requests.Create(request))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.requests.GetByID(request.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

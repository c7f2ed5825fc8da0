package service_test

import (
	"context"
	"testing"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUsers      *mocks.MockUserRepositoryInterface
	mockRequests   *mocks.MockMembershipRequestRepositoryInterface
	mockNotifier   *mocks.MockNotifier
	accountService *service.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRequests = mocks.NewMockMembershipRequestRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.accountService = service.NewAccountService(suite.mockUsers, suite.mockRequests, suite.mockNotifier, service.NewValidator())
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) user(end *time.Time) *models.User {
	return &models.User{
		ID:                1,
		TenantID:          testTenant,
		Username:          "usta",
		Role:              models.UserRoleUser,
		IsActive:          true,
		MembershipEndDate: end,
	}
}

func (suite *AccountServiceTestSuite) TestMembership_Active() {
	end := time.Now().Add(10*24*time.Hour - time.Hour)
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(&end), nil)
	suite.mockRequests.EXPECT().HasPending(int64(1)).Return(true, nil)

	info, err := suite.accountService.Membership(context.Background(), 1)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), info.IsActive)
	assert.Equal(suite.T(), 10, info.DaysRemaining)
	assert.True(suite.T(), info.HasPendingRequest)
}

func (suite *AccountServiceTestSuite) TestMembership_Expired() {
	end := time.Now().Add(-time.Hour)
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(&end), nil)
	suite.mockRequests.EXPECT().HasPending(int64(1)).Return(false, nil)

	info, err := suite.accountService.Membership(context.Background(), 1)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), info.IsActive)
	assert.Equal(suite.T(), 0, info.DaysRemaining)
}

func (suite *AccountServiceTestSuite) TestSelectPlan_SecondPendingRejected() {
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(nil), nil)
	suite.mockRequests.EXPECT().HasPending(int64(1)).Return(true, nil)

	_, err := suite.accountService.SelectPlan(context.Background(), 1, &service.SelectPlanRequest{Months: intPtr(6)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPendingMembershipRequestExists)
}

func (suite *AccountServiceTestSuite) TestSelectPlan_CreatesPendingRequest() {
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(nil), nil)
	suite.mockRequests.EXPECT().HasPending(int64(1)).Return(false, nil)
	suite.mockRequests.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.MembershipRequest) error {
		assert.Equal(suite.T(), models.MembershipRequestPending, r.Status)
		assert.Equal(suite.T(), 6, r.Months)
		assert.Equal(suite.T(), testTenant, r.TenantID)
		return nil
	})

	req, err := suite.accountService.SelectPlan(context.Background(), 1, &service.SelectPlanRequest{Months: intPtr(6)})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "usta", req.Username)
}

func (suite *AccountServiceTestSuite) TestSelectPlan_MonthsMustBePositive() {
	_, err := suite.accountService.SelectPlan(context.Background(), 1, &service.SelectPlanRequest{Months: intPtr(0)})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AccountServiceTestSuite) TestAddMembership_ExtendsFromCurrentEnd() {
	end := time.Now().AddDate(0, 2, 0)
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(&end), nil).Times(2)
	suite.mockUsers.EXPECT().Update(int64(1), gomock.Any()).DoAndReturn(func(_ int64, updates map[string]interface{}) error {
		got := updates["membership_end_date"].(time.Time)
		assert.True(suite.T(), got.Equal(end.AddDate(0, 3, 0)))
		assert.Equal(suite.T(), true, updates["is_active"])
		return nil
	})

	_, err := suite.accountService.AddMembership(context.Background(), 1, &service.AddMembershipRequest{Months: intPtr(3)})

	assert.NoError(suite.T(), err)
}

func (suite *AccountServiceTestSuite) TestAddMembership_CustomDate() {
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(nil), nil).Times(2)
	suite.mockUsers.EXPECT().Update(int64(1), gomock.Any()).DoAndReturn(func(_ int64, updates map[string]interface{}) error {
		got := updates["membership_end_date"].(time.Time)
		assert.Equal(suite.T(), "2030-01-31", got.Format("2006-01-02"))
		return nil
	})

	_, err := suite.accountService.AddMembership(context.Background(), 1, &service.AddMembershipRequest{CustomDate: strPtr("2030-01-31")})

	assert.NoError(suite.T(), err)
}

func (suite *AccountServiceTestSuite) TestAddMembership_InvalidCustomDate() {
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(nil), nil)

	_, err := suite.accountService.AddMembership(context.Background(), 1, &service.AddMembershipRequest{CustomDate: strPtr("31/01/2030")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipCustomDateInvalid)
}

func (suite *AccountServiceTestSuite) TestApproveMembershipRequest_NotifiesUser() {
	pending := &models.MembershipRequest{ID: 5, TenantModel: models.TenantModel{TenantID: testTenant}, UserID: 1, Username: "usta", Months: 12, Status: models.MembershipRequestPending}
	approved := *pending
	approved.Status = models.MembershipRequestApproved

	gomock.InOrder(
		suite.mockRequests.EXPECT().GetByID(int64(5)).Return(pending, nil),
		suite.mockRequests.EXPECT().GetByID(int64(5)).Return(&approved, nil),
	)
	suite.mockUsers.EXPECT().GetByID(int64(1)).Return(suite.user(nil), nil)
	suite.mockRequests.EXPECT().Approve(int64(5), "Üyelik talebiniz onaylandı.", gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().Notify(gomock.Any(), testTenant, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, n service.NewNotification) (*models.Notification, error) {
			assert.Equal(suite.T(), models.NotificationTypeMembershipApproved, n.Type)
			assert.Equal(suite.T(), "usta", n.Username)
			return &models.Notification{}, nil
		})

	got, err := suite.accountService.ApproveMembershipRequest(context.Background(), 5, nil)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipRequestApproved, got.Status)
}

func (suite *AccountServiceTestSuite) TestRejectMembershipRequest_AlreadyReviewed() {
	suite.mockRequests.EXPECT().GetByID(int64(5)).Return(&models.MembershipRequest{ID: 5, Status: models.MembershipRequestApproved}, nil)

	_, err := suite.accountService.RejectMembershipRequest(context.Background(), 5, &service.ReviewMembershipRequest{Reason: strPtr("Ödeme alınmadı")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipRequestNotPending)
}

func (suite *AccountServiceTestSuite) TestDeleteUser_NotFound() {
	suite.mockUsers.EXPECT().Delete(int64(9)).Return(gorm.ErrRecordNotFound)

	err := suite.accountService.DeleteUser(context.Background(), 9)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

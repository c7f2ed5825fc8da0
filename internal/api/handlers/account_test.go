package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"garage-backend/internal/api/handlers"
	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAccountServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAccountServiceInterface(suite.ctrl)
	handler := handlers.NewAccountHandler(suite.mockService)

	suite.http = authenticatedRouter()
	suite.http.Router.GET("/auth/profile", handler.GetProfile)
	suite.http.Router.PUT("/auth/profile", handler.UpdateProfile)
	suite.http.Router.GET("/auth/membership", handler.Membership)
	suite.http.Router.POST("/auth/select-membership-plan", handler.SelectPlan)
	suite.http.Router.PUT("/admin/users/:id/toggle-active", handler.SetActive)
	suite.http.Router.DELETE("/admin/users/:id", handler.DeleteUser)
	suite.http.Router.POST("/admin/users/:id/add-membership", handler.AddMembership)
	suite.http.Router.POST("/admin/membership-requests/:id/approve", handler.ApproveMembershipRequest)
	suite.http.Router.POST("/admin/membership-requests/:id/reject", handler.RejectMembershipRequest)
}

func (suite *AccountHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountHandlerTestSuite) TestGetProfile_HidesPasswordHash() {
	suite.mockService.EXPECT().GetProfile(gomock.Any(), testUserID).Return(&models.User{
		ID:           testUserID,
		Username:     testUsername,
		PasswordHash: "$2a$10$secret",
		FirmaAdi:     "Usta Oto",
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/auth/profile", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Usta Oto")
	assert.NotContains(suite.T(), w.Body.String(), "secret")
}

func (suite *AccountHandlerTestSuite) TestUpdateProfile_InvalidEmail() {
	suite.mockService.EXPECT().UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "must be a valid email address"))

	w := suite.http.MakeRequest(http.MethodPut, "/auth/profile", map[string]string{"email": "nope"})

	testutils.AssertFieldError(suite.T(), w, "email")
}

func (suite *AccountHandlerTestSuite) TestMembership() {
	suite.mockService.EXPECT().Membership(gomock.Any(), testUserID).
		Return(&service.MembershipInfo{IsActive: true, DaysRemaining: 12}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/auth/membership", nil)

	var info service.MembershipInfo
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &info)
	assert.Equal(suite.T(), 12, info.DaysRemaining)
}

func (suite *AccountHandlerTestSuite) TestSelectPlan_PendingConflict() {
	suite.mockService.EXPECT().SelectPlan(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, apperrors.ErrPendingMembershipRequestExists)

	w := suite.http.MakeRequest(http.MethodPost, "/auth/select-membership-plan", map[string]int{"months": 6})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AccountHandlerTestSuite) TestSetActive() {
	suite.mockService.EXPECT().SetActive(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req *service.SetActiveRequest) (*models.User, error) {
			require.NotNil(suite.T(), req.IsActive)
			assert.False(suite.T(), *req.IsActive)
			return &models.User{ID: 5}, nil
		})

	w := suite.http.MakeRequest(http.MethodPut, "/admin/users/5/toggle-active", map[string]bool{"isActive": false})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteUser_NotFound() {
	suite.mockService.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(apperrors.ErrUserNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/admin/users/5", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")
}

func (suite *AccountHandlerTestSuite) TestAddMembership_CustomDate() {
	suite.mockService.EXPECT().AddMembership(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req *service.AddMembershipRequest) (*models.User, error) {
			require.NotNil(suite.T(), req.CustomDate)
			assert.Equal(suite.T(), "2030-01-31", *req.CustomDate)
			return &models.User{ID: 5}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/admin/users/5/add-membership", map[string]string{"customDate": "2030-01-31"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestReviewMembershipRequest() {
	suite.mockService.EXPECT().ApproveMembershipRequest(gomock.Any(), int64(8), gomock.Any()).
		Return(&models.MembershipRequest{ID: 8, Status: models.MembershipRequestApproved}, nil)
	suite.mockService.EXPECT().RejectMembershipRequest(gomock.Any(), int64(9), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req *service.ReviewMembershipRequest) (*models.MembershipRequest, error) {
			require.NotNil(suite.T(), req.Reason)
			return &models.MembershipRequest{ID: 9, Status: models.MembershipRequestRejected}, nil
		})

	w := suite.http.MakeRequest(http.MethodPost, "/admin/membership-requests/8/approve", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.http.MakeRequest(http.MethodPost, "/admin/membership-requests/9/reject", map[string]string{"reason": "Ödeme alınmadı"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

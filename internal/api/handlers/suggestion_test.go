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

type SuggestionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSuggestionServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *SuggestionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSuggestionServiceInterface(suite.ctrl)
	handler := handlers.NewSuggestionHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.Use(withPrincipal(99, "admin", 10000000, models.UserRoleAdmin))
	suite.http.Router.POST("/oneri", handler.CreateSuggestion)
	suite.http.Router.PATCH("/oneri/:id", handler.UpdateSuggestion)
	suite.http.Router.DELETE("/oneri/:id", handler.DeleteSuggestion)
	suite.http.Router.GET("/admin/oneriler", handler.ListForReview)
	suite.http.Router.PATCH("/admin/oneriler/:id/approve", handler.ApproveSuggestion)
	suite.http.Router.PATCH("/admin/oneriler/:id/reject", handler.RejectSuggestion)
}

func (suite *SuggestionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuggestionHandlerTestSuite) TestCreate_IgnoresBodyUsername() {
	suite.mockService.EXPECT().Create(gomock.Any(), int64(10000000), gomock.Any()).
		Return(&models.Suggestion{ID: 1, Username: "admin"}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/oneri", map[string]interface{}{
		"oneriBaslik": "Toplu SMS",
		"sorunTanimi": "Müşterilere hatırlatma",
		"mevcutCozum": "Telefon",
		"etkiAlani":   []string{"iletisim"},
		"username":    "someone-else",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"username":"admin"`)
}

func (suite *SuggestionHandlerTestSuite) TestUpdate_PassesPresentFields() {
	suite.mockService.EXPECT().Update(gomock.Any(), int64(10000000), int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, req *service.UpdateSuggestionRequest) (*models.Suggestion, error) {
			require.NotNil(suite.T(), req.EkNot)
			assert.Equal(suite.T(), "Acil", *req.EkNot)
			assert.Nil(suite.T(), req.OneriBaslik)
			return &models.Suggestion{ID: 4}, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/oneri/4", map[string]string{"ekNot": "Acil"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SuggestionHandlerTestSuite) TestUpdate_OtherTenant() {
	suite.mockService.EXPECT().Update(gomock.Any(), int64(10000000), int64(4), gomock.Any()).Return(nil, apperrors.ErrSuggestionNotFound)

	w := suite.http.MakeRequest(http.MethodPatch, "/oneri/4", map[string]string{"ekNot": "Acil"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "suggestion not found")
}

func (suite *SuggestionHandlerTestSuite) TestDelete() {
	suite.mockService.EXPECT().Delete(gomock.Any(), int64(10000000), int64(4)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/oneri/4", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *SuggestionHandlerTestSuite) TestDelete_OtherTenant() {
	suite.mockService.EXPECT().Delete(gomock.Any(), int64(10000000), int64(4)).Return(apperrors.ErrSuggestionNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/oneri/4", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "suggestion not found")
}

func (suite *SuggestionHandlerTestSuite) TestApprove_WithoutBody() {
	suite.mockService.EXPECT().Approve(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req *service.ReviewSuggestionRequest) (*models.Suggestion, error) {
			require.NotNil(suite.T(), req)
			assert.Nil(suite.T(), req.AdminResponse)
			return &models.Suggestion{ID: 4, Status: models.SuggestionStatusApproved}, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/admin/oneriler/4/approve", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SuggestionHandlerTestSuite) TestReject_WithResponse() {
	suite.mockService.EXPECT().Reject(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, req *service.ReviewSuggestionRequest) (*models.Suggestion, error) {
			require.NotNil(suite.T(), req.AdminResponse)
			assert.Equal(suite.T(), "Yol haritasında yok", *req.AdminResponse)
			return &models.Suggestion{ID: 4, Status: models.SuggestionStatusRejected}, nil
		})

	w := suite.http.MakeRequest(http.MethodPatch, "/admin/oneriler/4/reject", map[string]string{"adminResponse": "Yol haritasında yok"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SuggestionHandlerTestSuite) TestListForReview() {
	suite.mockService.EXPECT().ListForReview(gomock.Any()).Return([]models.Suggestion{{ID: 1}, {ID: 2}}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/admin/oneriler", nil)

	var got []models.Suggestion
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

func TestSuggestionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionHandlerTestSuite))
}

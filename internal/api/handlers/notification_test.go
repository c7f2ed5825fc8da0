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
	"go.uber.org/mock/gomock"
)

func setupNotificationRoutes(t *testing.T) (*mocks.MockNotificationServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockNotificationServiceInterface(ctrl)
	handler := handlers.NewNotificationHandler(mockService)

	router := authenticatedRouter()
	router.Router.GET("/notifications", handler.ListNotifications)
	router.Router.PATCH("/notifications/read-all", handler.MarkAllRead)
	router.Router.PATCH("/notifications/:id/read", handler.MarkRead)
	router.Router.DELETE("/notifications/:id", handler.DeleteNotification)
	router.Router.GET("/notification-preferences", handler.GetPreferences)
	router.Router.PATCH("/notification-preferences", handler.UpdatePreferences)

	return mockService, router
}

func TestNotificationHandler_ListScopedToCaller(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().List(gomock.Any(), testTenant, testUsername).Return([]models.Notification{{ID: 1}}, nil)

	w := router.MakeRequest(http.MethodGet, "/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationHandler_MarkReadForeignNotification(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().MarkRead(gomock.Any(), testTenant, testUsername, int64(42)).Return(apperrors.ErrNotificationNotFound)

	w := router.MakeRequest(http.MethodPatch, "/notifications/42/read", nil)

	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "notification not found")
}

func TestNotificationHandler_Delete(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().Delete(gomock.Any(), testTenant, testUsername, int64(42)).Return(nil)

	w := router.MakeRequest(http.MethodDelete, "/notifications/42", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNotificationHandler_DeleteForeignNotification(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().Delete(gomock.Any(), testTenant, testUsername, int64(42)).Return(apperrors.ErrNotificationNotFound)

	w := router.MakeRequest(http.MethodDelete, "/notifications/42", nil)

	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "notification not found")
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().MarkRead(gomock.Any(), testTenant, testUsername, int64(42)).Return(nil)

	w := router.MakeRequest(http.MethodPatch, "/notifications/42/read", nil)

	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().MarkAllRead(gomock.Any(), testTenant, testUsername).
		Return(&service.MarkAllReadResponse{Success: true, Updated: 4}, nil)

	w := router.MakeRequest(http.MethodPatch, "/notifications/read-all", nil)

	assert.JSONEq(t, `{"success":true,"updated":4}`, w.Body.String())
}

func TestNotificationHandler_UpdatePreferences(t *testing.T) {
	mockService, router := setupNotificationRoutes(t)
	mockService.EXPECT().UpdatePreferences(gomock.Any(), testTenant, testUsername, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, req *service.UpdatePreferencesRequest) (*models.NotificationPreference, error) {
			require.NotNil(t, req.OneriRejected)
			assert.False(t, *req.OneriRejected)
			assert.Nil(t, req.EmailEnabled)
			return &models.NotificationPreference{}, nil
		})

	w := router.MakeRequest(http.MethodPatch, "/notification-preferences", map[string]bool{"oneriRejected": false})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationHandler_RequiresUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewNotificationHandler(mocks.NewMockNotificationServiceInterface(ctrl))

	router := testutils.SetupHTTPTest()
	router.Router.Use(withPrincipal(testUserID, "", testTenant, models.UserRoleUser))
	router.Router.GET("/notifications", handler.ListNotifications)

	w := router.MakeRequest(http.MethodGet, "/notifications", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

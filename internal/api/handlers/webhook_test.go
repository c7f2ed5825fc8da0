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
	"go.uber.org/mock/gomock"
)

func setupWebhookRoutes(t *testing.T) (*mocks.MockWebhookServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockWebhookServiceInterface(ctrl)
	handler := handlers.NewWebhookHandler(mockService)

	router := authenticatedRouter()
	router.Router.POST("/webhook/register", handler.RegisterWebhook)
	router.Router.GET("/webhook", handler.ListWebhooks)
	router.Router.GET("/webhook/:id", handler.GetWebhook)
	router.Router.PATCH("/webhook/:id", handler.UpdateWebhook)
	router.Router.DELETE("/webhook/:id", handler.DeleteWebhook)
	router.Router.POST("/webhook/trigger/:event", handler.TriggerWebhook)

	return mockService, router
}

func TestWebhookHandler_Register(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Register(gomock.Any(), testTenant, gomock.Any()).Return(&service.RegisterWebhookResponse{
		ID:      1,
		Message: "Webhook kaydedildi",
		URL:     "https://hooks.example.com",
		Events:  []string{"card.created"},
	}, nil)

	w := router.MakeRequest(http.MethodPost, "/webhook/register", map[string]interface{}{
		"url":    "https://hooks.example.com",
		"events": []string{"card.created"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Webhook kaydedildi")
}

func TestWebhookHandler_TriggerForwardsAnyJSON(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Trigger(gomock.Any(), testTenant, "stock.low", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ string, data interface{}) (*service.TriggerResponse, error) {
			assert.Equal(t, []interface{}{"Filtre", float64(2)}, data)
			return &service.TriggerResponse{Triggered: 2, Failed: 1}, nil
		})

	w := router.MakeRequest(http.MethodPost, "/webhook/trigger/stock.low", []interface{}{"Filtre", 2})

	assert.JSONEq(t, `{"triggered":2,"failed":1}`, w.Body.String())
}

func TestWebhookHandler_TriggerWithoutBody(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Trigger(gomock.Any(), testTenant, "ping", nil).Return(&service.TriggerResponse{}, nil)

	w := router.MakeRequest(http.MethodPost, "/webhook/trigger/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_Delete(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Delete(gomock.Any(), testTenant, int64(3)).Return(nil)

	w := router.MakeRequest(http.MethodDelete, "/webhook/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestWebhookHandler_Get(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().GetByID(gomock.Any(), testTenant, int64(3)).Return(&models.Webhook{
		ID:     3,
		URL:    "https://hooks.example.com",
		Events: []string{"card.created"},
	}, nil)

	w := router.MakeRequest(http.MethodGet, "/webhook/3", nil)

	var got models.Webhook
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, []string{"card.created"}, got.Events)
}

func TestWebhookHandler_GetOtherTenant(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().GetByID(gomock.Any(), testTenant, int64(3)).Return(nil, apperrors.ErrWebhookNotFound)

	w := router.MakeRequest(http.MethodGet, "/webhook/3", nil)

	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "webhook not found")
}

func TestWebhookHandler_Update(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Update(gomock.Any(), testTenant, int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, req *service.UpdateWebhookRequest) (*models.Webhook, error) {
			assert.Nil(t, req.URL)
			assert.Equal(t, []string{"quote.created"}, req.Events)
			return &models.Webhook{ID: 3, Events: req.Events}, nil
		})

	w := router.MakeRequest(http.MethodPatch, "/webhook/3", map[string]interface{}{
		"events": []string{"quote.created"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_UpdateOtherTenant(t *testing.T) {
	mockService, router := setupWebhookRoutes(t)
	mockService.EXPECT().Update(gomock.Any(), testTenant, int64(3), gomock.Any()).Return(nil, apperrors.ErrWebhookNotFound)

	w := router.MakeRequest(http.MethodPatch, "/webhook/3", map[string]string{"url": "https://hooks.example.com/new"})

	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "webhook not found")
}

package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"garage-backend/internal/api/handlers"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupBackupRoutes(t *testing.T) (*mocks.MockBackupServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockBackupServiceInterface(ctrl)
	handler := handlers.NewBackupHandler(mockService)

	router := authenticatedRouter()
	router.Router.POST("/backup/create", handler.CreateBackup)
	router.Router.POST("/backup/restore", handler.RestoreBackup)
	router.Router.GET("/backup/list", handler.ListBackups)

	return mockService, router
}

func TestBackupHandler_CreateIsAttachment(t *testing.T) {
	mockService, router := setupBackupRoutes(t)
	mockService.EXPECT().Create(gomock.Any(), testTenant).Return(&service.BackupDocument{
		TenantID: testTenant,
		Version:  "1.0",
	}, nil)

	w := router.MakeRequest(http.MethodPost, "/backup/create", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="backup-12345678-`)
	assert.Contains(t, w.Body.String(), `"version":"1.0"`)
}

func TestBackupHandler_RestorePassesRawBody(t *testing.T) {
	mockService, router := setupBackupRoutes(t)
	payload := `{"version":"1.0","data":{"cards":[],"teklifler":[],"stoklar":[]}}`
	mockService.EXPECT().Restore(gomock.Any(), testTenant, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, raw []byte) (*service.RestoreResponse, error) {
			assert.JSONEq(t, payload, string(raw))
			return &service.RestoreResponse{}, nil
		})

	w := router.MakeRawRequest(http.MethodPost, "/backup/restore", payload)

	assert.JSONEq(t, `{"restored":{"cards":0,"teklifler":0,"stoklar":0}}`, w.Body.String())
}

func TestBackupHandler_RestoreSchemaViolation(t *testing.T) {
	mockService, router := setupBackupRoutes(t)
	mockService.EXPECT().Restore(gomock.Any(), testTenant, gomock.Any()).
		Return(nil, apperrors.NewValidationError("data", "missing properties: 'data'"))

	w := router.MakeRawRequest(http.MethodPost, "/backup/restore", `{"version":"1.0"}`)

	testutils.AssertFieldError(t, w, "data")
}

func TestBackupHandler_ListIsEmptyArray(t *testing.T) {
	mockService, router := setupBackupRoutes(t)
	mockService.EXPECT().List(gomock.Any(), testTenant).Return([]service.BackupInfo{}, nil)

	w := router.MakeRequest(http.MethodGet, "/backup/list", nil)

	assert.JSONEq(t, `[]`, w.Body.String())
}

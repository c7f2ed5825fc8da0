package handlers_test

import (
	"net/http"
	"testing"

	"garage-backend/internal/api/handlers"
	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/testutils"

	"go.uber.org/mock/gomock"
)

func TestWorkItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockWorkItemServiceInterface(ctrl)
	handler := handlers.NewWorkItemHandler(mockService)

	router := authenticatedRouter()
	router.Router.POST("/yapilanlar", handler.CreateWorkItem)
	router.Router.GET("/yapilanlar", handler.ListWorkItems)
	router.Router.PATCH("/yapilanlar/:id", handler.UpdateWorkItem)
	router.Router.DELETE("/yapilanlar/:id", handler.DeleteWorkItem)

	router.RunHTTPTestCases(t, []testutils.HTTPTestCase{
		{
			Name:   "create on foreign card",
			Method: http.MethodPost,
			URL:    "/yapilanlar",
			Body:   map[string]interface{}{"card_id": 99, "parcaAdi": "Balata", "birimAdedi": 1, "birimFiyati": 100, "toplamFiyat": 100},
			Setup: func() {
				mockService.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).Return(nil, apperrors.ErrCardNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:   "list",
			Method: http.MethodGet,
			URL:    "/yapilanlar",
			Setup: func() {
				mockService.EXPECT().GetAll(gomock.Any(), testTenant).Return([]models.WorkItem{}, nil)
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   []interface{}{},
		},
		{
			Name:   "update both owners",
			Method: http.MethodPatch,
			URL:    "/yapilanlar/4",
			Body:   map[string]int{"card_id": 1, "teklif_id": 2},
			Setup: func() {
				mockService.EXPECT().Update(gomock.Any(), testTenant, int64(4), gomock.Any()).Return(nil, apperrors.ErrWorkItemOwnerAmbiguous)
			},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:   "delete",
			Method: http.MethodDelete,
			URL:    "/yapilanlar/4",
			Setup: func() {
				mockService.EXPECT().Delete(gomock.Any(), testTenant, int64(4)).Return(nil)
			},
			ExpectedStatus: http.StatusNoContent,
		},
	})
}

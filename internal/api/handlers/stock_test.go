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

func TestStockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockStockServiceInterface(ctrl)
	handler := handlers.NewStockHandler(mockService)

	router := authenticatedRouter()
	stock := router.Router.Group("/stok")
	stock.POST("", handler.CreateStock)
	stock.GET("/:id", handler.GetStock)
	stock.PATCH("/:id/adet/:operation", handler.AdjustQuantity)
	stock.DELETE("/:id", handler.DeleteStock)

	router.RunHTTPTestCases(t, []testutils.HTTPTestCase{
		{
			Name:   "create",
			Method: http.MethodPost,
			URL:    "/stok",
			Body:   map[string]interface{}{"stokAdi": "Filtre", "adet": 4, "info": ""},
			Setup: func() {
				mockService.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).
					Return(&models.Stock{ID: 1, StokAdi: "Filtre", Adet: 4}, nil)
			},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:   "increment",
			Method: http.MethodPatch,
			URL:    "/stok/1/adet/increment",
			Setup: func() {
				mockService.EXPECT().AdjustQuantity(gomock.Any(), testTenant, int64(1), "increment").
					Return(&models.Stock{ID: 1, Adet: 5}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "unknown operation",
			Method: http.MethodPatch,
			URL:    "/stok/1/adet/double",
			Setup: func() {
				mockService.EXPECT().AdjustQuantity(gomock.Any(), testTenant, int64(1), "double").
					Return(nil, apperrors.ErrInvalidStockOperation)
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody: map[string]interface{}{
				"error":  "validation error: operation - must be increment or decrement",
				"fields": []map[string]string{{"field": "operation", "message": "must be increment or decrement"}},
			},
		},
		{
			Name:   "other tenant's item",
			Method: http.MethodGet,
			URL:    "/stok/77",
			Setup: func() {
				mockService.EXPECT().GetByID(gomock.Any(), testTenant, int64(77)).Return(nil, apperrors.ErrStockNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedBody:   map[string]string{"error": "stock item not found"},
		},
		{
			Name:           "zero id",
			Method:         http.MethodDelete,
			URL:            "/stok/0",
			ExpectedStatus: http.StatusBadRequest,
		},
	})
}

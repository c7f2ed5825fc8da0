package handlers_test

import (
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

func setupQuoteRoutes(t *testing.T) (*mocks.MockQuoteServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockQuoteServiceInterface(ctrl)
	handler := handlers.NewQuoteHandler(mockService)

	router := authenticatedRouter()
	quotes := router.Router.Group("/teklif")
	quotes.POST("", handler.CreateQuote)
	quotes.GET("", handler.ListQuotes)
	quotes.DELETE("/delAll", handler.DeleteAllQuotes)
	quotes.GET("/:id", handler.GetQuote)
	quotes.POST("/:id/convert", handler.ConvertToCard)
	quotes.DELETE("/:id", handler.DeleteQuote)

	return mockService, router
}

func TestQuoteHandler_CreateWithoutKm(t *testing.T) {
	mockService, router := setupQuoteRoutes(t)
	mockService.EXPECT().Create(gomock.Any(), testTenant, gomock.Any()).Return(&models.Quote{ID: 2}, nil)

	w := router.MakeRequest(http.MethodPost, "/teklif", map[string]string{"plaka": "06XYZ42", "adSoyad": "Mehmet"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"teklif_id":2`)
}

func TestQuoteHandler_ConvertToCard(t *testing.T) {
	mockService, router := setupQuoteRoutes(t)
	mockService.EXPECT().ConvertToCard(gomock.Any(), testTenant, int64(2)).Return(&models.Card{ID: 11}, nil)

	w := router.MakeRequest(http.MethodPost, "/teklif/2/convert", nil)

	var card models.Card
	testutils.AssertJSONResponse(t, w, http.StatusCreated, &card)
	assert.Equal(t, int64(11), card.ID)
}

func TestQuoteHandler_ConvertMissingQuote(t *testing.T) {
	mockService, router := setupQuoteRoutes(t)
	mockService.EXPECT().ConvertToCard(gomock.Any(), testTenant, int64(8)).Return(nil, apperrors.ErrQuoteNotFound)

	w := router.MakeRequest(http.MethodPost, "/teklif/8/convert", nil)

	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "quote not found")
}

func TestQuoteHandler_DeleteAll(t *testing.T) {
	mockService, router := setupQuoteRoutes(t)
	mockService.EXPECT().DeleteAll(gomock.Any(), testTenant).Return(&service.DeleteAllResponse{Deleted: 0}, nil)

	w := router.MakeRequest(http.MethodDelete, "/teklif/delAll", nil)

	assert.JSONEq(t, `{"deleted":0}`, w.Body.String())
}

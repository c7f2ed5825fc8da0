package handlers_test

import (
	"net/http"
	"testing"

	"garage-backend/internal/api/handlers"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"
	"garage-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_IsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockContactServiceInterface(ctrl)
	handler := handlers.NewContactHandler(mockService)

	router := testutils.SetupHTTPTest()
	router.Router.POST("/contact", handler.SendMessage)

	mockService.EXPECT().Send(gomock.Any(), gomock.Any()).Return(&service.ContactResponse{Success: true, Message: "Mesajınız iletildi"}, nil)

	w := router.MakeRequest(http.MethodPost, "/contact", map[string]string{
		"name":    "Ayşe",
		"email":   "ayse@example.com",
		"subject": "Fiyat",
		"message": "Üyelik ücreti nedir?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

package handlers_test

import (
	"net/http"
	"testing"

	"garage-backend/internal/api/handlers"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestArchiveHandler_DaysOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockArchiveServiceInterface(ctrl)
	handler := handlers.NewArchiveHandler(mockService)

	router := authenticatedRouter()
	router.Router.POST("/archive/cards/:daysOld", handler.ArchiveCards)
	router.Router.POST("/archive/logs/:daysOld", handler.ArchiveLogs)

	testCases := []struct {
		name   string
		path   string
		expect func()
		status int
	}{
		{
			name: "cards explicit",
			path: "/archive/cards/30",
			expect: func() {
				mockService.EXPECT().ArchiveCards(gomock.Any(), testTenant, 30).Return(&service.ArchiveCardsResponse{Archived: 2}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "cards fallback",
			path: "/archive/cards/eski",
			expect: func() {
				mockService.EXPECT().ArchiveCards(gomock.Any(), testTenant, 365).Return(&service.ArchiveCardsResponse{}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "logs fallback",
			path: "/archive/logs/x",
			expect: func() {
				mockService.EXPECT().ArchiveLogs(gomock.Any(), testTenant, 90).Return(&service.ArchiveLogsResponse{Deleted: 4}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "logs negative",
			path: "/archive/logs/-3",
			expect: func() {
				mockService.EXPECT().ArchiveLogs(gomock.Any(), testTenant, -3).Return(nil, apperrors.ErrArchiveDaysInvalid)
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect()
			w := router.MakeRequest(http.MethodPost, tc.path, nil)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

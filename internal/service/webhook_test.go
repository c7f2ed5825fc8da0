package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/mocks"
	"garage-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type WebhookServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockWebhookRepositoryInterface
	webhookService *service.WebhookService
}

func (suite *WebhookServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWebhookRepositoryInterface(suite.ctrl)
	suite.webhookService = service.NewWebhookService(suite.mockRepo, service.NewValidator(), 2*time.Second)
}

func (suite *WebhookServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WebhookServiceTestSuite) TestRegister_Success() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(w *models.Webhook) error {
		assert.Equal(suite.T(), testTenant, w.TenantID)
		w.ID = 1
		return nil
	})

	resp, err := suite.webhookService.Register(context.Background(), testTenant, &service.RegisterWebhookRequest{
		URL:    strPtr("https://hooks.example.com/garage"),
		Events: []string{service.EventCardCreated},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Webhook kaydedildi", resp.Message)
	assert.Equal(suite.T(), []string{"card.created"}, resp.Events)
}

func (suite *WebhookServiceTestSuite) TestRegister_Validation() {
	testCases := []struct {
		name  string
		req   *service.RegisterWebhookRequest
		field string
	}{
		{"invalid url", &service.RegisterWebhookRequest{URL: strPtr("not a url"), Events: []string{"card.created"}}, "url"},
		{"no events", &service.RegisterWebhookRequest{URL: strPtr("https://x.example.com"), Events: []string{}}, "events"},
		{"blank event", &service.RegisterWebhookRequest{URL: strPtr("https://x.example.com"), Events: []string{""}}, "events[0]"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.webhookService.Register(context.Background(), testTenant, tc.req)
			verr, ok := apperrors.AsValidation(err)
			require.True(suite.T(), ok)
			assert.Equal(suite.T(), tc.field, verr.Details()[0].Field)
		})
	}
}

func (suite *WebhookServiceTestSuite) TestGetByID_OtherTenantNotFound() {
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.webhookService.GetByID(context.Background(), testTenant, 3)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWebhookNotFound)
}

func (suite *WebhookServiceTestSuite) TestUpdate_ReplacesEvents() {
	stored := &models.Webhook{ID: 3, URL: "https://hooks.example.com/garage", Events: []string{service.EventQuoteCreated}}
	suite.mockRepo.EXPECT().Update(testTenant, int64(3), map[string]interface{}{
		"events": []string{service.EventQuoteCreated},
	}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(testTenant, int64(3)).Return(stored, nil)

	got, err := suite.webhookService.Update(context.Background(), testTenant, 3, &service.UpdateWebhookRequest{
		Events: []string{service.EventQuoteCreated},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"quote.created"}, got.Events)
}

func (suite *WebhookServiceTestSuite) TestUpdate_InvalidURL() {
	_, err := suite.webhookService.Update(context.Background(), testTenant, 3, &service.UpdateWebhookRequest{URL: strPtr("not a url")})

	verr, ok := apperrors.AsValidation(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "url", verr.Details()[0].Field)
}

func (suite *WebhookServiceTestSuite) TestUpdate_OtherTenantNotFound() {
	suite.mockRepo.EXPECT().Update(testTenant, int64(3), gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := suite.webhookService.Update(context.Background(), testTenant, 3, &service.UpdateWebhookRequest{URL: strPtr("https://hooks.example.com/new")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrWebhookNotFound)
}

func (suite *WebhookServiceTestSuite) TestTrigger_CountsDeliveries() {
	var mu sync.Mutex
	var received []map[string]interface{}
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		received = append(received, body)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ok.Close()
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	suite.mockRepo.EXPECT().GetByEvent(testTenant, "card.created").Return([]models.Webhook{
		{ID: 1, URL: ok.URL},
		{ID: 2, URL: failing.URL},
		{ID: 3, URL: "http://127.0.0.1:1"},
	}, nil)

	resp, err := suite.webhookService.Trigger(context.Background(), testTenant, "card.created", map[string]string{"plaka": "34ABC123"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Triggered)
	assert.Equal(suite.T(), 2, resp.Failed)

	require.Len(suite.T(), received, 1)
	assert.Equal(suite.T(), "card.created", received[0]["event"])
	assert.Equal(suite.T(), float64(testTenant), received[0]["tenant_id"])
	assert.Equal(suite.T(), map[string]interface{}{"plaka": "34ABC123"}, received[0]["data"])
	_, err = time.Parse(time.RFC3339Nano, received[0]["timestamp"].(string))
	assert.NoError(suite.T(), err)
}

func (suite *WebhookServiceTestSuite) TestTrigger_NoSubscribers() {
	suite.mockRepo.EXPECT().GetByEvent(testTenant, "quote.deleted").Return(nil, nil)

	resp, err := suite.webhookService.Trigger(context.Background(), testTenant, "quote.deleted", nil)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Triggered)
	assert.Equal(suite.T(), 0, resp.Failed)
}

func (suite *WebhookServiceTestSuite) TestPublish_DeliversInBackground() {
	delivered := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
	}))
	defer server.Close()

	suite.mockRepo.EXPECT().GetByEvent(testTenant, service.EventCardDeleted).Return([]models.Webhook{{ID: 1, URL: server.URL}}, nil)

	suite.webhookService.Publish(context.Background(), testTenant, service.EventCardDeleted, map[string]int64{"card_id": 1})

	select {
	case <-delivered:
	case <-time.After(3 * time.Second):
		suite.T().Fatal("event was not delivered")
	}
}

func TestWebhookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookServiceTestSuite))
}

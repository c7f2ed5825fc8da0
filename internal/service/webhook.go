package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Domain events delivered to subscribed webhooks
const (
	EventCardCreated    = "card.created"
	EventCardUpdated    = "card.updated"
	EventCardDeleted    = "card.deleted"
	EventQuoteCreated   = "quote.created"
	EventQuoteDeleted   = "quote.deleted"
	EventQuoteConverted = "quote.converted"
)

const defaultWebhookTimeout = 10 * time.Second

// WebhookService manages webhook registrations and delivers events to them
type WebhookService struct {
	repo       repository.WebhookRepositoryInterface
	validator  *validator.Validate
	httpClient *http.Client
}

// NewWebhookService creates a new webhook service. A zero timeout falls back to 10s.
func NewWebhookService(repo repository.WebhookRepositoryInterface, validator *validator.Validate, timeout time.Duration) *WebhookService {
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}
	return &WebhookService{
		repo:       repo,
		validator:  validator,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RegisterWebhookRequest represents the request to register a webhook
type RegisterWebhookRequest struct {
	URL    *string  `json:"url" validate:"required,url"`
	Events []string `json:"events" validate:"required,min=1,dive,required"`
}

// UpdateWebhookRequest changes the target URL or replaces the event list
type UpdateWebhookRequest struct {
	URL    *string  `json:"url,omitempty" validate:"omitempty,url"`
	Events []string `json:"events,omitempty" validate:"omitempty,min=1,dive,required"`
}

// RegisterWebhookResponse echoes the stored registration
type RegisterWebhookResponse struct {
	ID      int64    `json:"id"`
	Message string   `json:"message"`
	URL     string   `json:"url"`
	Events  []string `json:"events"`
}

// TriggerResponse counts successful and failed deliveries
type TriggerResponse struct {
	Triggered int `json:"triggered"`
	Failed    int `json:"failed"`
}

// webhookPayload is the envelope POSTed to every subscriber
type webhookPayload struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
	TenantID  int64       `json:"tenant_id"`
	Timestamp string      `json:"timestamp"`
}

// Register stores a webhook for the tenant
func (s *WebhookService) Register(ctx context.Context, tenantID int64, req *RegisterWebhookRequest) (*RegisterWebhookResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	webhook := &models.Webhook{
		TenantModel: models.TenantModel{TenantID: tenantID},
		URL:         *req.URL,
		Events:      req.Events,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(webhook); err != nil {
		return nil, fmt.Errorf("failed to register webhook: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"webhook_id": webhook.ID,
		"events":     webhook.Events,
	}).Info("Webhook registered")

	return &RegisterWebhookResponse{
		ID:      webhook.ID,
		Message: "Webhook kaydedildi",
		URL:     webhook.URL,
		Events:  webhook.Events,
	}, nil
}

// GetAll lists the tenant's registrations
func (s *WebhookService) GetAll(ctx context.Context, tenantID int64) ([]models.Webhook, error) {
	hooks, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	if hooks == nil {
		hooks = []models.Webhook{}
	}
	return hooks, nil
}

// GetByID retrieves one of the tenant's registrations
func (s *WebhookService) GetByID(ctx context.Context, tenantID, id int64) (*models.Webhook, error) {
	hook, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrWebhookNotFound, "get webhook")
	}
	return hook, nil
}

// Update applies the present fields to a registration
func (s *WebhookService) Update(ctx context.Context, tenantID, id int64, req *UpdateWebhookRequest) (*models.Webhook, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.URL != nil {
		updates["url"] = *req.URL
	}
	if req.Events != nil {
		updates["events"] = req.Events
	}
	if len(updates) > 0 {
		if err := s.repo.Update(tenantID, id, updates); err != nil {
			return nil, repoError(err, apperrors.ErrWebhookNotFound, "update webhook")
		}
		logger.WithContext(ctx).WithField("webhook_id", id).Info("Webhook updated")
	}
	return s.GetByID(ctx, tenantID, id)
}

// Delete removes one registration
func (s *WebhookService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrWebhookNotFound, "delete webhook")
	}
	return nil
}

// Trigger delivers data to every subscriber of event in parallel and waits for all of them
func (s *WebhookService) Trigger(ctx context.Context, tenantID int64, event string, data interface{}) (*TriggerResponse, error) {
	if event == "" {
		return nil, apperrors.ErrWebhookEventRequired
	}

	hooks, err := s.repo.GetByEvent(tenantID, event)
	if err != nil {
		return nil, fmt.Errorf("failed to load webhooks: %w", err)
	}

	body, err := json.Marshal(webhookPayload{
		Event:     event,
		Data:      data,
		TenantID:  tenantID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	log := logger.WithContext(ctx)
	result := &TriggerResponse{}
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, hook := range hooks {
		wg.Add(1)
		go func(hook models.Webhook) {
			defer wg.Done()
			err := s.deliver(ctx, hook.URL, body)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				log.WithError(err).WithFields(map[string]interface{}{
					"webhook_id": hook.ID,
					"event":      event,
				}).Warn("Webhook delivery failed")
				return
			}
			result.Triggered++
		}(hook)
	}
	wg.Wait()

	return result, nil
}

// Publish delivers a domain event in the background. It never blocks the caller
// and delivery failures are only logged.
func (s *WebhookService) Publish(ctx context.Context, tenantID int64, event string, data interface{}) {
	log := logger.WithContext(ctx)
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), s.httpClient.Timeout+time.Second)
		defer cancel()

		res, err := s.Trigger(bg, tenantID, event, data)
		if err != nil {
			log.WithError(err).WithField("event", event).Warn("Failed to publish event")
			return
		}
		if res.Failed > 0 {
			log.WithFields(map[string]interface{}{
				"event":     event,
				"triggered": res.Triggered,
				"failed":    res.Failed,
			}).Warn("Event published with failed deliveries")
		}
	}()
}

func (s *WebhookService) deliver(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

package repository

import (
	"encoding/json"

	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// WebhookRepository handles database operations for webhook registrations
type WebhookRepository struct {
	db *gorm.DB
}

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *gorm.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

// Create creates a new registration
func (r *WebhookRepository) Create(webhook *models.Webhook) error {
	return r.db.Create(webhook).Error
}

// GetAll retrieves every registration of a tenant
func (r *WebhookRepository) GetAll(tenantID int64) ([]models.Webhook, error) {
	var webhooks []models.Webhook
	err := r.db.Scopes(tenantScope(tenantID)).Order("id ASC").Find(&webhooks).Error
	return webhooks, err
}

// GetByID retrieves one registration of a tenant
func (r *WebhookRepository) GetByID(tenantID, id int64) (*models.Webhook, error) {
	var webhook models.Webhook
	err := r.db.Scopes(tenantScope(tenantID)).First(&webhook, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &webhook, nil
}

// GetByEvent retrieves the tenant's registrations subscribed to event
func (r *WebhookRepository) GetByEvent(tenantID int64, event string) ([]models.Webhook, error) {
	filter, err := json.Marshal([]string{event})
	if err != nil {
		return nil, err
	}
	var webhooks []models.Webhook
	err = r.db.Scopes(tenantScope(tenantID)).
		Where("events @> ?::jsonb", string(filter)).
		Order("id ASC").
		Find(&webhooks).Error
	return webhooks, err
}

// Update changes the target or the subscribed events of a registration
func (r *WebhookRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	if err := encodeJSONColumns(updates, "events"); err != nil {
		return err
	}
	return affected(r.db.Model(&models.Webhook{}).
		Scopes(tenantScope(tenantID)).
		Where("id = ?", id).
		Updates(updates))
}

// Delete deletes a registration
func (r *WebhookRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).Delete(&models.Webhook{}))
}

package repository

import (
	"time"

	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// SuggestionRepository handles database operations for suggestions (oneri)
type SuggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// Create creates a new suggestion
func (r *SuggestionRepository) Create(suggestion *models.Suggestion) error {
	return r.db.Create(suggestion).Error
}

// GetByID retrieves a suggestion of a tenant
func (r *SuggestionRepository) GetByID(tenantID, id int64) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.Scopes(tenantScope(tenantID)).First(&suggestion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// GetAll retrieves a tenant's suggestions, newest first
func (r *SuggestionRepository) GetAll(tenantID int64) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	err := r.db.Scopes(tenantScope(tenantID)).Order("tarih DESC").Find(&suggestions).Error
	return suggestions, err
}

// Update applies a partial update to a tenant's suggestion
func (r *SuggestionRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	if err := encodeJSONColumns(updates, "etki_alani"); err != nil {
		return err
	}
	return affected(r.db.Model(&models.Suggestion{}).
		Scopes(tenantScope(tenantID)).
		Where("id = ?", id).
		Updates(updates))
}

// Delete deletes a tenant's suggestion
func (r *SuggestionRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).Delete(&models.Suggestion{}))
}

// GetAllTenants retrieves suggestions across every tenant for admin review
func (r *SuggestionRepository) GetAllTenants() ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	err := r.db.Order("tarih DESC").Find(&suggestions).Error
	return suggestions, err
}

// GetByIDAnyTenant retrieves a suggestion regardless of tenant. Admin use only.
func (r *SuggestionRepository) GetByIDAnyTenant(id int64) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.First(&suggestion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// Review records an admin decision on a suggestion
func (r *SuggestionRepository) Review(id int64, status models.SuggestionStatus, response string, reviewedAt time.Time) error {
	return affected(r.db.Model(&models.Suggestion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":         status,
		"admin_response": response,
		"reviewed_at":    reviewedAt,
	}))
}

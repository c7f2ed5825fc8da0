package repository

import (
	"time"

	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// ActivityLogRepository handles database operations for the audit log
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create appends an entry
func (r *ActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// Recent returns the newest entries of a tenant
func (r *ActivityLogRepository) Recent(tenantID int64, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.Scopes(tenantScope(tenantID)).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// DeleteOlderThan removes a tenant's entries recorded before cutoff
func (r *ActivityLogRepository) DeleteOlderThan(tenantID int64, cutoff time.Time) (int64, error) {
	result := r.db.Scopes(tenantScope(tenantID)).Where("timestamp < ?", cutoff).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}

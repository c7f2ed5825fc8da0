package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByRecipient retrieves a user's notifications, newest first
func (r *NotificationRepository) GetByRecipient(tenantID int64, username string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Scopes(tenantScope(tenantID)).
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead marks one of the user's notifications as read
func (r *NotificationRepository) MarkRead(tenantID int64, username string, id int64) error {
	return affected(r.db.Model(&models.Notification{}).
		Scopes(tenantScope(tenantID)).
		Where("username = ? AND id = ?", username, id).
		Update("is_read", true))
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(tenantID int64, username string) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Scopes(tenantScope(tenantID)).
		Where("username = ? AND is_read = ?", username, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// Delete removes one of the user's notifications
func (r *NotificationRepository) Delete(tenantID int64, username string, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).
		Where("username = ? AND id = ?", username, id).
		Delete(&models.Notification{}))
}

// NotificationPreferenceRepository handles database operations for notification preferences
type NotificationPreferenceRepository struct {
	db *gorm.DB
}

// NewNotificationPreferenceRepository creates a new notification preference repository
func NewNotificationPreferenceRepository(db *gorm.DB) *NotificationPreferenceRepository {
	return &NotificationPreferenceRepository{db: db}
}

// GetOrCreate returns the user's preferences, inserting the defaults on first access
func (r *NotificationPreferenceRepository) GetOrCreate(tenantID int64, username string) (*models.NotificationPreference, error) {
	defaults := models.DefaultNotificationPreference(tenantID, username)
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "username"}},
		DoNothing: true,
	}).Create(defaults).Error
	if err != nil {
		return nil, err
	}

	var pref models.NotificationPreference
	if err := r.db.Scopes(tenantScope(tenantID)).First(&pref, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// Update applies a partial update to the user's preferences
func (r *NotificationPreferenceRepository) Update(tenantID int64, username string, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.NotificationPreference{}).
		Scopes(tenantScope(tenantID)).
		Where("username = ?", username).
		Updates(updates))
}

package service

import (
	"context"
	"fmt"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// NotificationService manages user notifications and their delivery preferences
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	prefs     repository.NotificationPreferenceRepositoryInterface
	pusher    Pusher
	validator *validator.Validate
}

// NewNotificationService creates a new notification service. pusher may be nil.
func NewNotificationService(repo repository.NotificationRepositoryInterface, prefs repository.NotificationPreferenceRepositoryInterface, pusher Pusher, validator *validator.Validate) *NotificationService {
	return &NotificationService{
		repo:      repo,
		prefs:     prefs,
		pusher:    pusher,
		validator: validator,
	}
}

// NewNotification describes a notification to deliver
type NewNotification struct {
	Username string
	Title    string
	Message  string
	Content  string
	Type     models.NotificationType
}

// MarkAllReadResponse reports how many notifications changed
type MarkAllReadResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

// UpdatePreferencesRequest is a partial update of the notification toggles
type UpdatePreferencesRequest struct {
	EmailEnabled        *bool `json:"emailEnabled,omitempty"`
	SmsEnabled          *bool `json:"smsEnabled,omitempty"`
	OneriApproved       *bool `json:"oneriApproved,omitempty"`
	OneriRejected       *bool `json:"oneriRejected,omitempty"`
	PaymentReminder     *bool `json:"paymentReminder,omitempty"`
	MaintenanceReminder *bool `json:"maintenanceReminder,omitempty"`
}

// Notify stores a notification unless the recipient disabled its type, then
// pushes it to any live connection. Returns nil, nil when the type is disabled.
func (s *NotificationService) Notify(ctx context.Context, tenantID int64, n NewNotification) (*models.Notification, error) {
	if n.Username == "" {
		return nil, apperrors.ErrNotificationRecipientMissing
	}

	pref, err := s.prefs.GetOrCreate(tenantID, n.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification preferences: %w", err)
	}
	if !pref.Allows(n.Type) {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"recipient": n.Username,
			"type":      n.Type,
		}).Debug("Notification skipped by preference")
		return nil, nil
	}

	notification := &models.Notification{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Username:    n.Username,
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type,
	}
	if n.Content != "" {
		notification.Content = &n.Content
	}
	if err := s.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.pusher != nil {
		s.pusher.Push(tenantID, n.Username, notification)
	}
	return notification, nil
}

// List returns the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, tenantID int64, username string) ([]models.Notification, error) {
	list, err := s.repo.GetByRecipient(tenantID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications read
func (s *NotificationService) MarkRead(ctx context.Context, tenantID int64, username string, id int64) error {
	if err := s.repo.MarkRead(tenantID, username, id); err != nil {
		return repoError(err, apperrors.ErrNotificationNotFound, "mark notification read")
	}
	return nil
}

// Delete removes one of the caller's notifications
func (s *NotificationService) Delete(ctx context.Context, tenantID int64, username string, id int64) error {
	if err := s.repo.Delete(tenantID, username, id); err != nil {
		return repoError(err, apperrors.ErrNotificationNotFound, "delete notification")
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller read
func (s *NotificationService) MarkAllRead(ctx context.Context, tenantID int64, username string) (*MarkAllReadResponse, error) {
	updated, err := s.repo.MarkAllRead(tenantID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return &MarkAllReadResponse{Success: true, Updated: updated}, nil
}

// GetPreferences returns the caller's toggles, creating the defaults on first access
func (s *NotificationService) GetPreferences(ctx context.Context, tenantID int64, username string) (*models.NotificationPreference, error) {
	pref, err := s.prefs.GetOrCreate(tenantID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification preferences: %w", err)
	}
	return pref, nil
}

// UpdatePreferences applies the present toggles
func (s *NotificationService) UpdatePreferences(ctx context.Context, tenantID int64, username string, req *UpdatePreferencesRequest) (*models.NotificationPreference, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	// Make sure the row exists before a partial update
	if _, err := s.GetPreferences(ctx, tenantID, username); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	toggles := map[string]*bool{
		"email_enabled":        req.EmailEnabled,
		"sms_enabled":          req.SmsEnabled,
		"oneri_approved":       req.OneriApproved,
		"oneri_rejected":       req.OneriRejected,
		"payment_reminder":     req.PaymentReminder,
		"maintenance_reminder": req.MaintenanceReminder,
	}
	for col, v := range toggles {
		if v != nil {
			updates[col] = *v
		}
	}

	if len(updates) > 0 {
		if err := s.prefs.Update(tenantID, username, updates); err != nil {
			return nil, fmt.Errorf("failed to update notification preferences: %w", err)
		}
	}
	return s.GetPreferences(ctx, tenantID, username)
}

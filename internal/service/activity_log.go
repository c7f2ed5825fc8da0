package service

import (
	"context"
	"fmt"
	"time"

	"garage-backend/internal/database/models"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	defaultRecentLogLimit = 100
	maxRecentLogLimit     = 500
)

// ActivityLogService records and reads the audit trail. It is the Auditor used by the other services.
type ActivityLogService struct {
	repo      repository.ActivityLogRepositoryInterface
	validator *validator.Validate
}

// NewActivityLogService creates a new activity log service
func NewActivityLogService(repo repository.ActivityLogRepositoryInterface, validator *validator.Validate) *ActivityLogService {
	return &ActivityLogService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLogRequest represents a client supplied audit entry
type CreateLogRequest struct {
	Action     *string `json:"action" validate:"required,min=1,max=20"`
	Duzenleyen *string `json:"duzenleyen,omitempty"`
}

// SuccessResponse is the plain acknowledgement body
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Record appends an audit entry for the acting user. Failures are logged and
// never reach the caller.
func (s *ActivityLogService) Record(ctx context.Context, tenantID int64, action, note string) {
	entry := s.entry(ctx, tenantID, action)
	if note != "" {
		entry.Duzenleyen = &note
	}
	if err := s.repo.Create(entry); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("action", action).Warn("Failed to record activity log")
	}
}

// Create stores a client supplied entry. The username always comes from the authenticated caller.
func (s *ActivityLogService) Create(ctx context.Context, tenantID int64, req *CreateLogRequest) (*SuccessResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	entry := s.entry(ctx, tenantID, *req.Action)
	entry.Duzenleyen = req.Duzenleyen
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create log entry: %w", err)
	}
	return &SuccessResponse{Success: true}, nil
}

// Recent returns the tenant's newest entries. limit defaults to 100 and is capped at 500.
func (s *ActivityLogService) Recent(ctx context.Context, tenantID int64, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultRecentLogLimit
	}
	if limit > maxRecentLogLimit {
		limit = maxRecentLogLimit
	}

	entries, err := s.repo.Recent(tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	if entries == nil {
		entries = []models.ActivityLog{}
	}
	return entries, nil
}

// Prune deletes the tenant's entries older than the given number of days
func (s *ActivityLogService) Prune(ctx context.Context, tenantID int64, days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := s.repo.DeleteOlderThan(tenantID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune log entries: %w", err)
	}
	return deleted, nil
}

func (s *ActivityLogService) entry(ctx context.Context, tenantID int64, action string) *models.ActivityLog {
	entry := &models.ActivityLog{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Username:    actor(ctx),
		Action:      action,
		Timestamp:   time.Now(),
	}
	if ip := contextString(ctx, ContextKeyClientIP); ip != "" {
		entry.IPAddress = &ip
	}
	if ua := contextString(ctx, ContextKeyUserAgent); ua != "" {
		entry.UserAgent = &ua
	}
	return entry
}

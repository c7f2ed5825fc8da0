package service

import (
	"context"
	"fmt"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	defaultApprovalResponse  = "Öneriniz onaylandı. Teşekkür ederiz!"
	defaultRejectionResponse = "Öneriniz incelendi ancak şu an için uygulanamaz."
)

// SuggestionService handles suggestion (oneri) submission and admin review
type SuggestionService struct {
	repo      repository.SuggestionRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(repo repository.SuggestionRepositoryInterface, notifier Notifier, validator *validator.Validate) *SuggestionService {
	return &SuggestionService{
		repo:      repo,
		notifier:  notifier,
		validator: validator,
	}
}

// CreateSuggestionRequest represents the request to submit a suggestion
type CreateSuggestionRequest struct {
	OneriBaslik *string  `json:"oneriBaslik" validate:"required,min=1,max=255"`
	SorunTanimi *string  `json:"sorunTanimi" validate:"required,min=1"`
	MevcutCozum *string  `json:"mevcutCozum" validate:"required"`
	EtkiAlani   []string `json:"etkiAlani" validate:"required,dive,min=1,max=100"`
	EkNot       *string  `json:"ekNot,omitempty"`
}

// UpdateSuggestionRequest represents a partial edit of a suggestion. Review fields are not editable.
type UpdateSuggestionRequest struct {
	OneriBaslik *string  `json:"oneriBaslik,omitempty" validate:"omitempty,min=1,max=255"`
	SorunTanimi *string  `json:"sorunTanimi,omitempty" validate:"omitempty,min=1"`
	MevcutCozum *string  `json:"mevcutCozum,omitempty"`
	EtkiAlani   []string `json:"etkiAlani,omitempty" validate:"omitempty,dive,min=1,max=100"`
	EkNot       *string  `json:"ekNot,omitempty"`
}

// ReviewSuggestionRequest carries an optional admin response
type ReviewSuggestionRequest struct {
	AdminResponse *string `json:"adminResponse,omitempty"`
}

// Create stores a pending suggestion submitted by the caller
func (s *SuggestionService) Create(ctx context.Context, tenantID int64, req *CreateSuggestionRequest) (*models.Suggestion, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	suggestion := &models.Suggestion{
		TenantModel: models.TenantModel{TenantID: tenantID},
		OneriBaslik: *req.OneriBaslik,
		SorunTanimi: *req.SorunTanimi,
		MevcutCozum: *req.MevcutCozum,
		EtkiAlani:   req.EtkiAlani,
		EkNot:       req.EkNot,
		Username:    actor(ctx),
		Tarih:       time.Now(),
		Status:      models.SuggestionStatusPending,
	}
	if err := s.repo.Create(suggestion); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return suggestion, nil
}

// GetAll lists the tenant's suggestions, newest first
func (s *SuggestionService) GetAll(ctx context.Context, tenantID int64) ([]models.Suggestion, error) {
	list, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	if list == nil {
		list = []models.Suggestion{}
	}
	return list, nil
}

// GetByID retrieves one of the tenant's suggestions
func (s *SuggestionService) GetByID(ctx context.Context, tenantID, id int64) (*models.Suggestion, error) {
	suggestion, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrSuggestionNotFound, "get suggestion")
	}
	return suggestion, nil
}

// Update edits one of the tenant's suggestions
func (s *SuggestionService) Update(ctx context.Context, tenantID, id int64, req *UpdateSuggestionRequest) (*models.Suggestion, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.OneriBaslik != nil {
		updates["oneri_baslik"] = *req.OneriBaslik
	}
	if req.SorunTanimi != nil {
		updates["sorun_tanimi"] = *req.SorunTanimi
	}
	if req.MevcutCozum != nil {
		updates["mevcut_cozum"] = *req.MevcutCozum
	}
	if req.EtkiAlani != nil {
		updates["etki_alani"] = req.EtkiAlani
	}
	if req.EkNot != nil {
		updates["ek_not"] = *req.EkNot
	}

	if len(updates) > 0 {
		if err := s.repo.Update(tenantID, id, updates); err != nil {
			return nil, repoError(err, apperrors.ErrSuggestionNotFound, "update suggestion")
		}
	}
	return s.GetByID(ctx, tenantID, id)
}

// Delete removes one of the tenant's suggestions
func (s *SuggestionService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrSuggestionNotFound, "delete suggestion")
	}
	return nil
}

// ListForReview returns suggestions of every tenant
func (s *SuggestionService) ListForReview(ctx context.Context) ([]models.Suggestion, error) {
	list, err := s.repo.GetAllTenants()
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	if list == nil {
		list = []models.Suggestion{}
	}
	return list, nil
}

// Approve accepts a suggestion and notifies the submitter
func (s *SuggestionService) Approve(ctx context.Context, id int64, req *ReviewSuggestionRequest) (*models.Suggestion, error) {
	return s.review(ctx, id, models.SuggestionStatusApproved, req)
}

// Reject declines a suggestion and notifies the submitter
func (s *SuggestionService) Reject(ctx context.Context, id int64, req *ReviewSuggestionRequest) (*models.Suggestion, error) {
	return s.review(ctx, id, models.SuggestionStatusRejected, req)
}

func (s *SuggestionService) review(ctx context.Context, id int64, status models.SuggestionStatus, req *ReviewSuggestionRequest) (*models.Suggestion, error) {
	response := defaultApprovalResponse
	if status == models.SuggestionStatusRejected {
		response = defaultRejectionResponse
	}
	if req != nil && req.AdminResponse != nil && *req.AdminResponse != "" {
		response = *req.AdminResponse
	}

	reviewedAt := time.Now()
	if err := s.repo.Review(id, status, response, reviewedAt); err != nil {
		return nil, repoError(err, apperrors.ErrSuggestionNotFound, "review suggestion")
	}
	suggestion, err := s.repo.GetByIDAnyTenant(id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrSuggestionNotFound, "get suggestion")
	}

	n := NewNotification{
		Username: suggestion.Username,
		Content:  response,
	}
	if status == models.SuggestionStatusApproved {
		n.Type = models.NotificationTypeOneriApproved
		n.Title = "Öneriniz Onaylandı! 🎉"
		n.Message = fmt.Sprintf("%q başlıklı öneriniz onaylandı.", suggestion.OneriBaslik)
	} else {
		n.Type = models.NotificationTypeOneriRejected
		n.Title = "Öneriniz Değerlendirildi"
		n.Message = fmt.Sprintf("%q başlıklı öneriniz değerlendirildi.", suggestion.OneriBaslik)
	}
	if _, err := s.notifier.Notify(ctx, suggestion.TenantID, n); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("suggestion_id", id).Warn("Failed to notify suggestion owner")
	}
	return suggestion, nil
}

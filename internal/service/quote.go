package service

import (
	"context"
	"fmt"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// QuoteService handles business logic for quotes (teklif)
type QuoteService struct {
	repo      repository.QuoteRepositoryInterface
	stock     repository.StockRepositoryInterface
	validator *validator.Validate
	auditor   Auditor
	events    EventPublisher
}

// NewQuoteService creates a new quote service
func NewQuoteService(repo repository.QuoteRepositoryInterface, stock repository.StockRepositoryInterface, validator *validator.Validate, auditor Auditor, events EventPublisher) *QuoteService {
	return &QuoteService{
		repo:      repo,
		stock:     stock,
		validator: validator,
		auditor:   auditor,
		events:    events,
	}
}

// CreateQuoteRequest represents the request to create a quote. km and modelYili are optional.
type CreateQuoteRequest struct {
	VehicleInput
	Km         *int            `json:"km,omitempty" validate:"omitempty,min=0"`
	ModelYili  *int            `json:"modelYili,omitempty" validate:"omitempty,min=0"`
	Yapilanlar []WorkItemInput `json:"yapilanlar,omitempty" validate:"omitempty,dive"`
}

// Create validates the request and stores the quote with its work items
func (s *QuoteService) Create(ctx context.Context, tenantID int64, req *CreateQuoteRequest) (*models.Quote, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	items, err := buildWorkItems(s.stock, tenantID, req.Yapilanlar)
	if err != nil {
		return nil, err
	}

	quote := &models.Quote{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Vehicle:     req.VehicleInput.toModel(actor(ctx)),
		Km:          req.Km,
		ModelYili:   req.ModelYili,
		Yapilanlar:  items,
	}
	if err := s.repo.Create(quote); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	s.auditor.Record(ctx, tenantID, models.ActionQuoteCreate, quote.Plaka)
	s.events.Publish(ctx, tenantID, EventQuoteCreated, quote)
	return quote, nil
}

// GetAll lists the tenant's quotes with their work items
func (s *QuoteService) GetAll(ctx context.Context, tenantID int64) ([]models.Quote, error) {
	quotes, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	return quotes, nil
}

// GetByID retrieves one quote with its work items
func (s *QuoteService) GetByID(ctx context.Context, tenantID, id int64) (*models.Quote, error) {
	quote, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrQuoteNotFound, "get quote")
	}
	return quote, nil
}

// Update applies the present fields of req to the quote
func (s *QuoteService) Update(ctx context.Context, tenantID, id int64, req *UpdateVehicleRequest) (*models.Quote, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := req.columns()
	if len(updates) > 0 {
		if err := s.repo.Update(tenantID, id, updates); err != nil {
			return nil, repoError(err, apperrors.ErrQuoteNotFound, "update quote")
		}
	}

	quote, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		s.auditor.Record(ctx, tenantID, models.ActionQuoteEdit, quote.Plaka)
	}
	return quote, nil
}

// ReplaceWorkItems swaps the quote's work items for the given lines
func (s *QuoteService) ReplaceWorkItems(ctx context.Context, tenantID, id int64, inputs []WorkItemInput) (*models.Quote, error) {
	if err := validateEach(s.validator, "yapilanlar", inputs); err != nil {
		return nil, err
	}
	items, err := buildWorkItems(s.stock, tenantID, inputs)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ReplaceWorkItems(tenantID, id, items); err != nil {
		return nil, repoError(err, apperrors.ErrQuoteNotFound, "replace quote work items")
	}

	quote, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(ctx, tenantID, models.ActionQuoteEdit, quote.Plaka)
	return quote, nil
}

// Delete removes the quote and its work items
func (s *QuoteService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrQuoteNotFound, "delete quote")
	}
	s.auditor.Record(ctx, tenantID, models.ActionQuoteDelete, fmt.Sprintf("teklif %d", id))
	s.events.Publish(ctx, tenantID, EventQuoteDeleted, map[string]int64{"teklif_id": id})
	return nil
}

// DeleteAll removes every quote of the tenant
func (s *QuoteService) DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error) {
	deleted, err := s.repo.DeleteAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete quotes: %w", err)
	}
	s.auditor.Record(ctx, tenantID, models.ActionQuoteDelete, fmt.Sprintf("%d teklif", deleted))
	return &DeleteAllResponse{Deleted: deleted}, nil
}

// ConvertToCard turns an accepted quote into a card
func (s *QuoteService) ConvertToCard(ctx context.Context, tenantID, id int64) (*models.Card, error) {
	card, err := s.repo.ConvertToCard(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrQuoteNotFound, "convert quote")
	}
	s.auditor.Record(ctx, tenantID, models.ActionCardCreate, card.Plaka)
	s.events.Publish(ctx, tenantID, EventQuoteConverted, map[string]int64{"teklif_id": id, "card_id": card.ID})
	return card, nil
}

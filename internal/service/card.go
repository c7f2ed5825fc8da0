package service

import (
	"context"
	"fmt"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CardService handles business logic for vehicle cards
type CardService struct {
	repo      repository.CardRepositoryInterface
	stock     repository.StockRepositoryInterface
	validator *validator.Validate
	auditor   Auditor
	events    EventPublisher
}

// NewCardService creates a new card service
func NewCardService(repo repository.CardRepositoryInterface, stock repository.StockRepositoryInterface, validator *validator.Validate, auditor Auditor, events EventPublisher) *CardService {
	return &CardService{
		repo:      repo,
		stock:     stock,
		validator: validator,
		auditor:   auditor,
		events:    events,
	}
}

// CreateCardRequest represents the request to create a card
type CreateCardRequest struct {
	VehicleInput
	Km         *int            `json:"km" validate:"required,min=0"`
	ModelYili  *int            `json:"modelYili" validate:"required,min=0"`
	Yapilanlar []WorkItemInput `json:"yapilanlar,omitempty" validate:"omitempty,dive"`
}

// DeleteAllResponse reports how many rows a bulk delete removed
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// Create validates the request and stores the card with its work items
func (s *CardService) Create(ctx context.Context, tenantID int64, req *CreateCardRequest) (*models.Card, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	items, err := buildWorkItems(s.stock, tenantID, req.Yapilanlar)
	if err != nil {
		return nil, err
	}

	card := &models.Card{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Vehicle:     req.VehicleInput.toModel(actor(ctx)),
		Km:          *req.Km,
		ModelYili:   *req.ModelYili,
		Yapilanlar:  items,
	}
	if err := s.repo.Create(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.auditor.Record(ctx, tenantID, models.ActionCardCreate, card.Plaka)
	s.events.Publish(ctx, tenantID, EventCardCreated, card)
	return card, nil
}

// GetAll lists the tenant's cards with their work items
func (s *CardService) GetAll(ctx context.Context, tenantID int64) ([]models.Card, error) {
	cards, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

// GetByID retrieves one card with its work items
func (s *CardService) GetByID(ctx context.Context, tenantID, id int64) (*models.Card, error) {
	card, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrCardNotFound, "get card")
	}
	return card, nil
}

// Update applies the present fields of req to the card
func (s *CardService) Update(ctx context.Context, tenantID, id int64, req *UpdateVehicleRequest) (*models.Card, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := req.columns()
	if len(updates) > 0 {
		if err := s.repo.Update(tenantID, id, updates); err != nil {
			return nil, repoError(err, apperrors.ErrCardNotFound, "update card")
		}
	}

	card, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		s.auditor.Record(ctx, tenantID, models.ActionCardEdit, card.Plaka)
		s.events.Publish(ctx, tenantID, EventCardUpdated, card)
	}
	return card, nil
}

// ReplaceWorkItems swaps the card's work items for the given lines
func (s *CardService) ReplaceWorkItems(ctx context.Context, tenantID, id int64, inputs []WorkItemInput) (*models.Card, error) {
	if err := validateEach(s.validator, "yapilanlar", inputs); err != nil {
		return nil, err
	}
	items, err := buildWorkItems(s.stock, tenantID, inputs)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.ReplaceWorkItems(tenantID, id, items); err != nil {
		return nil, repoError(err, apperrors.ErrCardNotFound, "replace card work items")
	}

	card, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	s.auditor.Record(ctx, tenantID, models.ActionCardEdit, card.Plaka)
	return card, nil
}

// Delete removes the card and, through the cascade, its work items
func (s *CardService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrCardNotFound, "delete card")
	}
	s.auditor.Record(ctx, tenantID, models.ActionCardDelete, fmt.Sprintf("kart %d", id))
	s.events.Publish(ctx, tenantID, EventCardDeleted, map[string]int64{"card_id": id})
	return nil
}

// DeleteAll removes every card of the tenant
func (s *CardService) DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error) {
	deleted, err := s.repo.DeleteAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete cards: %w", err)
	}
	s.auditor.Record(ctx, tenantID, models.ActionCardDelete, fmt.Sprintf("%d kart", deleted))
	return &DeleteAllResponse{Deleted: deleted}, nil
}

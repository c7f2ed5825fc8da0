package service

import (
	"context"
	"fmt"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// WorkItemService handles business logic for standalone work item (yapilanlar) operations
type WorkItemService struct {
	repo      repository.WorkItemRepositoryInterface
	cards     repository.CardRepositoryInterface
	quotes    repository.QuoteRepositoryInterface
	stock     repository.StockRepositoryInterface
	validator *validator.Validate
}

// NewWorkItemService creates a new work item service
func NewWorkItemService(repo repository.WorkItemRepositoryInterface, cards repository.CardRepositoryInterface, quotes repository.QuoteRepositoryInterface, stock repository.StockRepositoryInterface, validator *validator.Validate) *WorkItemService {
	return &WorkItemService{
		repo:      repo,
		cards:     cards,
		quotes:    quotes,
		stock:     stock,
		validator: validator,
	}
}

// CreateWorkItemRequest represents the request to create a work item
type CreateWorkItemRequest struct {
	WorkItemInput
	CardID   *int64 `json:"card_id,omitempty"`
	TeklifID *int64 `json:"teklif_id,omitempty"`
}

// UpdateWorkItemRequest represents a partial update of a work item
type UpdateWorkItemRequest struct {
	CardID      *int64  `json:"card_id,omitempty"`
	TeklifID    *int64  `json:"teklif_id,omitempty"`
	BirimAdedi  *int    `json:"birimAdedi,omitempty" validate:"omitempty,min=0"`
	ParcaAdi    *string `json:"parcaAdi,omitempty" validate:"omitempty,max=255"`
	BirimFiyati *int    `json:"birimFiyati,omitempty" validate:"omitempty,min=0"`
	ToplamFiyat *int    `json:"toplamFiyat,omitempty" validate:"omitempty,min=0"`
	StockID     *int64  `json:"stockId,omitempty"`
	IsFromStock *bool   `json:"isFromStock,omitempty"`
}

// Create validates ownership of the referenced card, quote and stock item and stores the line
func (s *WorkItemService) Create(ctx context.Context, tenantID int64, req *CreateWorkItemRequest) (*models.WorkItem, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.checkOwner(tenantID, req.CardID, req.TeklifID); err != nil {
		return nil, err
	}

	item := req.WorkItemInput.toModel(tenantID)
	item.CardID = req.CardID
	item.TeklifID = req.TeklifID
	if err := checkStockReference(s.stock, tenantID, item.IsFromStock, item.StockID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(&item); err != nil {
		return nil, fmt.Errorf("failed to create work item: %w", err)
	}
	return &item, nil
}

// GetAll lists the tenant's work items
func (s *WorkItemService) GetAll(ctx context.Context, tenantID int64) ([]models.WorkItem, error) {
	items, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	if items == nil {
		items = []models.WorkItem{}
	}
	return items, nil
}

// GetByID retrieves one work item
func (s *WorkItemService) GetByID(ctx context.Context, tenantID, id int64) (*models.WorkItem, error) {
	item, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrWorkItemNotFound, "get work item")
	}
	return item, nil
}

// Update applies the present fields of req to the work item
func (s *WorkItemService) Update(ctx context.Context, tenantID, id int64, req *UpdateWorkItemRequest) (*models.WorkItem, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.CardID != nil || req.TeklifID != nil {
		if err := s.checkOwner(tenantID, req.CardID, req.TeklifID); err != nil {
			return nil, err
		}
		// Moving a line to a new owner detaches it from the previous one
		updates["card_id"] = req.CardID
		updates["teklif_id"] = req.TeklifID
	}
	if req.BirimAdedi != nil {
		updates["birim_adedi"] = *req.BirimAdedi
	}
	if req.ParcaAdi != nil {
		updates["parca_adi"] = *req.ParcaAdi
	}
	if req.BirimFiyati != nil {
		updates["birim_fiyati"] = *req.BirimFiyati
	}
	if req.ToplamFiyat != nil {
		updates["toplam_fiyat"] = *req.ToplamFiyat
	}

	fromStock := current.IsFromStock
	stockID := current.StockID
	if req.IsFromStock != nil {
		fromStock = *req.IsFromStock
		updates["is_from_stock"] = fromStock
	}
	if req.StockID != nil {
		stockID = req.StockID
		updates["stock_id"] = *req.StockID
	}
	// A stored reference is only rechecked when the line switches to stock
	if req.StockID != nil || (req.IsFromStock != nil && fromStock) {
		if err := checkStockReference(s.stock, tenantID, fromStock, stockID); err != nil {
			return nil, err
		}
	}

	if len(updates) == 0 {
		return current, nil
	}
	if err := s.repo.Update(tenantID, id, updates); err != nil {
		return nil, repoError(err, apperrors.ErrWorkItemNotFound, "update work item")
	}
	return s.GetByID(ctx, tenantID, id)
}

// Delete removes one work item
func (s *WorkItemService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrWorkItemNotFound, "delete work item")
	}
	return nil
}

// checkOwner enforces that a line references at most one parent and that the parent is the tenant's
func (s *WorkItemService) checkOwner(tenantID int64, cardID, teklifID *int64) error {
	if cardID != nil && teklifID != nil {
		return apperrors.ErrWorkItemOwnerAmbiguous
	}
	if cardID != nil {
		exists, err := s.cards.Exists(tenantID, *cardID)
		if err != nil {
			return fmt.Errorf("failed to check card: %w", err)
		}
		if !exists {
			return apperrors.ErrCardNotFound
		}
	}
	if teklifID != nil {
		exists, err := s.quotes.Exists(tenantID, *teklifID)
		if err != nil {
			return fmt.Errorf("failed to check quote: %w", err)
		}
		if !exists {
			return apperrors.ErrQuoteNotFound
		}
	}
	return nil
}

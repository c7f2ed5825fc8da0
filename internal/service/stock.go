package service

import (
	"context"
	"fmt"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// StockService handles business logic for inventory
type StockService struct {
	repo      repository.StockRepositoryInterface
	validator *validator.Validate
	auditor   Auditor
}

// NewStockService creates a new stock service
func NewStockService(repo repository.StockRepositoryInterface, validator *validator.Validate, auditor Auditor) *StockService {
	return &StockService{
		repo:      repo,
		validator: validator,
		auditor:   auditor,
	}
}

// CreateStockRequest represents the request to create a stock item
type CreateStockRequest struct {
	StokAdi         *string    `json:"stokAdi" validate:"required,min=1,max=255"`
	Adet            *int       `json:"adet" validate:"required,min=0"`
	Info            *string    `json:"info" validate:"required"`
	EklenisTarihi   *time.Time `json:"eklenisTarihi,omitempty"`
	Kategori        *string    `json:"kategori,omitempty" validate:"omitempty,max=100"`
	MinStokSeviyesi *int       `json:"minStokSeviyesi,omitempty" validate:"omitempty,min=0"`
}

// UpdateStockRequest represents a partial update of a stock item
type UpdateStockRequest struct {
	StokAdi         *string    `json:"stokAdi,omitempty" validate:"omitempty,min=1,max=255"`
	Adet            *int       `json:"adet,omitempty" validate:"omitempty,min=0"`
	Info            *string    `json:"info,omitempty"`
	EklenisTarihi   *time.Time `json:"eklenisTarihi,omitempty"`
	Kategori        *string    `json:"kategori,omitempty" validate:"omitempty,max=100"`
	MinStokSeviyesi *int       `json:"minStokSeviyesi,omitempty" validate:"omitempty,min=0"`
}

// Create stores a new stock item, defaulting the added date to now and the threshold to 5
func (s *StockService) Create(ctx context.Context, tenantID int64, req *CreateStockRequest) (*models.Stock, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	stock := &models.Stock{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		StokAdi:         *req.StokAdi,
		Adet:            *req.Adet,
		Info:            *req.Info,
		EklenisTarihi:   time.Now(),
		Kategori:        req.Kategori,
		MinStokSeviyesi: req.MinStokSeviyesi,
	}
	if req.EklenisTarihi != nil {
		stock.EklenisTarihi = *req.EklenisTarihi
	}
	if stock.MinStokSeviyesi == nil {
		level := models.DefaultMinStockLevel
		stock.MinStokSeviyesi = &level
	}

	if err := s.repo.Create(stock); err != nil {
		return nil, fmt.Errorf("failed to create stock item: %w", err)
	}
	s.auditor.Record(ctx, tenantID, models.ActionStockCreate, stock.StokAdi)
	return stock, nil
}

// GetAll lists the tenant's stock
func (s *StockService) GetAll(ctx context.Context, tenantID int64) ([]models.Stock, error) {
	stock, err := s.repo.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	if stock == nil {
		stock = []models.Stock{}
	}
	return stock, nil
}

// GetByID retrieves one stock item
func (s *StockService) GetByID(ctx context.Context, tenantID, id int64) (*models.Stock, error) {
	stock, err := s.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, repoError(err, apperrors.ErrStockNotFound, "get stock item")
	}
	return stock, nil
}

// Update applies the present fields of req to the stock item
func (s *StockService) Update(ctx context.Context, tenantID, id int64, req *UpdateStockRequest) (*models.Stock, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.StokAdi != nil {
		updates["stok_adi"] = *req.StokAdi
	}
	if req.Adet != nil {
		updates["adet"] = *req.Adet
	}
	if req.Info != nil {
		updates["info"] = *req.Info
	}
	if req.EklenisTarihi != nil {
		updates["eklenis_tarihi"] = *req.EklenisTarihi
	}
	if req.Kategori != nil {
		updates["kategori"] = *req.Kategori
	}
	if req.MinStokSeviyesi != nil {
		updates["min_stok_seviyesi"] = *req.MinStokSeviyesi
	}

	if len(updates) > 0 {
		if err := s.repo.Update(tenantID, id, updates); err != nil {
			return nil, repoError(err, apperrors.ErrStockNotFound, "update stock item")
		}
	}
	stock, err := s.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		s.auditor.Record(ctx, tenantID, models.ActionStockUpdate, stock.StokAdi)
	}
	return stock, nil
}

// AdjustQuantity increments or decrements adet by one. Decrementing an empty item changes nothing.
func (s *StockService) AdjustQuantity(ctx context.Context, tenantID, id int64, operation string) (*models.Stock, error) {
	op := models.StockOperation(operation)
	if !op.IsValid() {
		return nil, apperrors.ErrInvalidStockOperation
	}

	stock, err := s.repo.AdjustQuantity(tenantID, id, op.Delta())
	if err != nil {
		return nil, repoError(err, apperrors.ErrStockNotFound, "adjust stock quantity")
	}
	s.auditor.Record(ctx, tenantID, models.ActionStockUpdate, fmt.Sprintf("%s %s", stock.StokAdi, operation))
	return stock, nil
}

// Delete removes one stock item
func (s *StockService) Delete(ctx context.Context, tenantID, id int64) error {
	if err := s.repo.Delete(tenantID, id); err != nil {
		return repoError(err, apperrors.ErrStockNotFound, "delete stock item")
	}
	s.auditor.Record(ctx, tenantID, models.ActionStockDelete, fmt.Sprintf("stok %d", id))
	return nil
}

// DeleteAll removes every stock item of the tenant
func (s *StockService) DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error) {
	deleted, err := s.repo.DeleteAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete stock: %w", err)
	}
	s.auditor.Record(ctx, tenantID, models.ActionStockDelete, fmt.Sprintf("%d stok", deleted))
	return &DeleteAllResponse{Deleted: deleted}, nil
}

package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// StockRepository handles database operations for stock items
type StockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// Create creates a new stock item
func (r *StockRepository) Create(stock *models.Stock) error {
	return r.db.Create(stock).Error
}

// GetByID retrieves a stock item by ID
func (r *StockRepository) GetByID(tenantID, id int64) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.Scopes(tenantScope(tenantID)).First(&stock, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// GetAll retrieves all stock items of a tenant
func (r *StockRepository) GetAll(tenantID int64) ([]models.Stock, error) {
	var stock []models.Stock
	err := r.db.Scopes(tenantScope(tenantID)).Order("id ASC").Find(&stock).Error
	return stock, err
}

// Exists checks whether the tenant owns a stock item with the given id
func (r *StockRepository) Exists(tenantID, id int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Stock{}).Scopes(tenantScope(tenantID)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update applies a partial update
func (r *StockRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.Stock{}).Scopes(tenantScope(tenantID)).Where("id = ?", id).Updates(updates))
}

// AdjustQuantity changes adet by delta in a single conditional statement.
// A decrement at zero leaves the row untouched.
func (r *StockRepository) AdjustQuantity(tenantID, id int64, delta int) (*models.Stock, error) {
	query := r.db.Model(&models.Stock{}).Scopes(tenantScope(tenantID)).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("adet >= ?", -delta)
	}
	if err := query.Update("adet", gorm.Expr("adet + ?", delta)).Error; err != nil {
		return nil, err
	}
	return r.GetByID(tenantID, id)
}

// Delete deletes a stock item
func (r *StockRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).Delete(&models.Stock{}))
}

// DeleteAll removes every stock item of a tenant
func (r *StockRepository) DeleteAll(tenantID int64) (int64, error) {
	result := r.db.Scopes(tenantScope(tenantID)).Delete(&models.Stock{})
	return result.RowsAffected, result.Error
}

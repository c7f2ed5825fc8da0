package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// QuoteRepository handles database operations for quotes (teklif)
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create inserts a quote and its work items in one transaction
func (r *QuoteRepository) Create(quote *models.Quote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := quote.Yapilanlar
		if err := tx.Omit("Yapilanlar").Create(quote).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].TenantID = quote.TenantID
			items[i].TeklifID = &quote.ID
			items[i].CardID = nil
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		quote.Yapilanlar = items
		return nil
	})
}

// GetByID retrieves a quote with its work items
func (r *QuoteRepository) GetByID(tenantID, id int64) (*models.Quote, error) {
	var quote models.Quote
	err := r.db.Scopes(tenantScope(tenantID)).
		Preload("Yapilanlar", orderedWorkItems).
		First(&quote, "teklif_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetAll retrieves every quote of a tenant
func (r *QuoteRepository) GetAll(tenantID int64) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Scopes(tenantScope(tenantID)).
		Preload("Yapilanlar", orderedWorkItems).
		Order("teklif_id ASC").
		Find(&quotes).Error
	return quotes, err
}

// Exists checks whether the tenant owns a quote with the given id
func (r *QuoteRepository) Exists(tenantID, id int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Quote{}).Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update applies a partial update. Keys are column names.
func (r *QuoteRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.Quote{}).Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Updates(updates))
}

// ReplaceWorkItems swaps the quote's work items for items in one transaction
func (r *QuoteRepository) ReplaceWorkItems(tenantID, id int64, items []models.WorkItem) ([]models.WorkItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Quote{}).Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Delete(&models.WorkItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].TenantID = tenantID
			items[i].TeklifID = &id
			items[i].CardID = nil
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a quote together with its work items
func (r *QuoteRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Delete(&models.Quote{}))
}

// DeleteAll removes every quote of a tenant and returns how many were removed
func (r *QuoteRepository) DeleteAll(tenantID int64) (int64, error) {
	result := r.db.Scopes(tenantScope(tenantID)).Delete(&models.Quote{})
	return result.RowsAffected, result.Error
}

// ConvertToCard creates a card from a quote, moves the quote's work items onto
// it and deletes the quote, all in one transaction.
func (r *QuoteRepository) ConvertToCard(tenantID, id int64) (*models.Card, error) {
	var card models.Card
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var quote models.Quote
		if err := tx.Scopes(tenantScope(tenantID)).First(&quote, "teklif_id = ?", id).Error; err != nil {
			return err
		}

		card = models.Card{
			TenantModel: models.TenantModel{TenantID: tenantID},
			Vehicle:     quote.Vehicle,
		}
		if quote.Km != nil {
			card.Km = *quote.Km
		}
		if quote.ModelYili != nil {
			card.ModelYili = *quote.ModelYili
		}
		if err := tx.Omit("Yapilanlar").Create(&card).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.WorkItem{}).Scopes(tenantScope(tenantID)).
			Where("teklif_id = ?", id).
			Updates(map[string]interface{}{"card_id": card.ID, "teklif_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Scopes(tenantScope(tenantID)).Where("teklif_id = ?", id).Delete(&models.Quote{}).Error; err != nil {
			return err
		}

		return tx.Scopes(tenantScope(tenantID)).Where("card_id = ?", card.ID).Order("id ASC").Find(&card.Yapilanlar).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// CardRepository handles database operations for cards
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a card and its work items in one transaction
func (r *CardRepository) Create(card *models.Card) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := card.Yapilanlar
		if err := tx.Omit("Yapilanlar").Create(card).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].TenantID = card.TenantID
			items[i].CardID = &card.ID
			items[i].TeklifID = nil
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		card.Yapilanlar = items
		return nil
	})
}

// GetByID retrieves a card with its work items
func (r *CardRepository) GetByID(tenantID, id int64) (*models.Card, error) {
	var card models.Card
	err := r.db.Scopes(tenantScope(tenantID)).
		Preload("Yapilanlar", orderedWorkItems).
		First(&card, "card_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetAll retrieves every card of a tenant
func (r *CardRepository) GetAll(tenantID int64) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Scopes(tenantScope(tenantID)).
		Preload("Yapilanlar", orderedWorkItems).
		Order("card_id ASC").
		Find(&cards).Error
	return cards, err
}

// Exists checks whether the tenant owns a card with the given id
func (r *CardRepository) Exists(tenantID, id int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Card{}).Scopes(tenantScope(tenantID)).Where("card_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update applies a partial update. Keys are column names.
func (r *CardRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.Card{}).Scopes(tenantScope(tenantID)).Where("card_id = ?", id).Updates(updates))
}

// ReplaceWorkItems swaps the card's work items for items in one transaction
func (r *CardRepository) ReplaceWorkItems(tenantID, id int64, items []models.WorkItem) ([]models.WorkItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Card{}).Scopes(tenantScope(tenantID)).Where("card_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Scopes(tenantScope(tenantID)).Where("card_id = ?", id).Delete(&models.WorkItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].TenantID = tenantID
			items[i].CardID = &id
			items[i].TeklifID = nil
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

// Delete removes a card. Its work items go with it through the foreign key cascade.
func (r *CardRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("card_id = ?", id).Delete(&models.Card{}))
}

// DeleteAll removes every card of a tenant and returns how many were removed
func (r *CardRepository) DeleteAll(tenantID int64) (int64, error) {
	result := r.db.Scopes(tenantScope(tenantID)).Delete(&models.Card{})
	return result.RowsAffected, result.Error
}

// EntryDates returns the raw girisTarihi value of every card of a tenant
func (r *CardRepository) EntryDates(tenantID int64) ([]string, error) {
	var dates []string
	err := r.db.Model(&models.Card{}).Scopes(tenantScope(tenantID)).Pluck("giris_tarihi", &dates).Error
	return dates, err
}

package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// BackupRepository restores exported tenant data
type BackupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

// Restore inserts cards, quotes and stock under tenantID in a single
// transaction. Incoming ids and tenant ids are overwritten.
func (r *BackupRepository) Restore(tenantID int64, cards []models.Card, quotes []models.Quote, stock []models.Stock) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		cardRepo := NewCardRepository(tx)
		for i := range cards {
			cards[i].ID = 0
			cards[i].TenantID = tenantID
			if err := cardRepo.Create(&cards[i]); err != nil {
				return err
			}
		}

		quoteRepo := NewQuoteRepository(tx)
		for i := range quotes {
			quotes[i].ID = 0
			quotes[i].TenantID = tenantID
			if err := quoteRepo.Create(&quotes[i]); err != nil {
				return err
			}
		}

		for i := range stock {
			stock[i].ID = 0
			stock[i].TenantID = tenantID
		}
		if len(stock) > 0 {
			if err := tx.Create(&stock).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

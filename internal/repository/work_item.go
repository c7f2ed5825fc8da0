package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// WorkItemRepository handles database operations for work items (yapilanlar)
type WorkItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository creates a new work item repository
func NewWorkItemRepository(db *gorm.DB) *WorkItemRepository {
	return &WorkItemRepository{db: db}
}

// Create creates a new work item
func (r *WorkItemRepository) Create(item *models.WorkItem) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a work item by ID
func (r *WorkItemRepository) GetByID(tenantID, id int64) (*models.WorkItem, error) {
	var item models.WorkItem
	err := r.db.Scopes(tenantScope(tenantID)).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAll retrieves all work items of a tenant
func (r *WorkItemRepository) GetAll(tenantID int64) ([]models.WorkItem, error) {
	var items []models.WorkItem
	err := r.db.Scopes(tenantScope(tenantID)).Order("id ASC").Find(&items).Error
	return items, err
}

// Update applies a partial update
func (r *WorkItemRepository) Update(tenantID, id int64, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.WorkItem{}).Scopes(tenantScope(tenantID)).Where("id = ?", id).Updates(updates))
}

// Delete deletes a work item
func (r *WorkItemRepository) Delete(tenantID, id int64) error {
	return affected(r.db.Scopes(tenantScope(tenantID)).Where("id = ?", id).Delete(&models.WorkItem{}))
}

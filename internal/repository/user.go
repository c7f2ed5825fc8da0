package repository

import (
	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// UsernameExists checks if a username is taken
func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// tenantOwned lists every model that carries a tenant_id. A tenant id still
// present in any of them is taken, even after its account was deleted.
var tenantOwned = []interface{}{
	&models.User{},
	&models.Card{},
	&models.Quote{},
	&models.WorkItem{},
	&models.Stock{},
	&models.Suggestion{},
	&models.Notification{},
	&models.NotificationPreference{},
	&models.ActivityLog{},
	&models.Webhook{},
	&models.MembershipRequest{},
}

// TenantIDExists checks if a tenant id is already allocated or still owns rows
func (r *UserRepository) TenantIDExists(tenantID int64) (bool, error) {
	for _, model := range tenantOwned {
		var count int64
		if err := r.db.Model(model).Where("tenant_id = ?", tenantID).Limit(1).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Update applies a partial update
func (r *UserRepository) Update(id int64, updates map[string]interface{}) error {
	return affected(r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates))
}

// Delete deletes a user. Membership requests go with it through the foreign key cascade.
func (r *UserRepository) Delete(id int64) error {
	return affected(r.db.Where("id = ?", id).Delete(&models.User{}))
}

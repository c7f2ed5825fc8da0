package repository

import (
	"time"

	"garage-backend/internal/database/models"

	"gorm.io/gorm"
)

// MembershipRequestRepository handles database operations for membership requests
type MembershipRequestRepository struct {
	db *gorm.DB
}

// NewMembershipRequestRepository creates a new membership request repository
func NewMembershipRequestRepository(db *gorm.DB) *MembershipRequestRepository {
	return &MembershipRequestRepository{db: db}
}

// Create creates a new membership request
func (r *MembershipRequestRepository) Create(request *models.MembershipRequest) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a membership request by ID
func (r *MembershipRequestRepository) GetByID(id int64) (*models.MembershipRequest, error) {
	var request models.MembershipRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetAll retrieves all membership requests, newest first
func (r *MembershipRequestRepository) GetAll() ([]models.MembershipRequest, error) {
	var requests []models.MembershipRequest
	err := r.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// HasPending checks if the user has a request awaiting review
func (r *MembershipRequestRepository) HasPending(userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.MembershipRequest{}).
		Where("user_id = ? AND status = ?", userID, models.MembershipRequestPending).
		Count(&count).Error
	return count > 0, err
}

// Approve marks a pending request approved and moves the user's membership end
// date in one transaction
func (r *MembershipRequestRepository) Approve(id int64, response string, membershipEnd time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var request models.MembershipRequest
		if err := tx.First(&request, "id = ?", id).Error; err != nil {
			return err
		}
		if err := affected(tx.Model(&models.MembershipRequest{}).
			Where("id = ? AND status = ?", id, models.MembershipRequestPending).
			Updates(map[string]interface{}{
				"status":         models.MembershipRequestApproved,
				"admin_response": response,
			})); err != nil {
			return err
		}
		return affected(tx.Model(&models.User{}).Where("id = ?", request.UserID).Updates(map[string]interface{}{
			"membership_end_date": membershipEnd,
			"is_active":           true,
		}))
	})
}

// Reject marks a pending request rejected
func (r *MembershipRequestRepository) Reject(id int64, response string) error {
	return affected(r.db.Model(&models.MembershipRequest{}).
		Where("id = ? AND status = ?", id, models.MembershipRequestPending).
		Updates(map[string]interface{}{
			"status":         models.MembershipRequestRejected,
			"admin_response": response,
		}))
}

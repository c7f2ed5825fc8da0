package repository

import (
	"time"

	"garage-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CardRepositoryInterface defines the interface for card repository operations
type CardRepositoryInterface interface {
	Create(card *models.Card) error
	GetByID(tenantID, id int64) (*models.Card, error)
	GetAll(tenantID int64) ([]models.Card, error)
	Exists(tenantID, id int64) (bool, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	ReplaceWorkItems(tenantID, id int64, items []models.WorkItem) ([]models.WorkItem, error)
	Delete(tenantID, id int64) error
	DeleteAll(tenantID int64) (int64, error)
	EntryDates(tenantID int64) ([]string, error)
}

// QuoteRepositoryInterface defines the interface for quote repository operations
type QuoteRepositoryInterface interface {
	Create(quote *models.Quote) error
	GetByID(tenantID, id int64) (*models.Quote, error)
	GetAll(tenantID int64) ([]models.Quote, error)
	Exists(tenantID, id int64) (bool, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	ReplaceWorkItems(tenantID, id int64, items []models.WorkItem) ([]models.WorkItem, error)
	Delete(tenantID, id int64) error
	DeleteAll(tenantID int64) (int64, error)
	ConvertToCard(tenantID, id int64) (*models.Card, error)
}

// WorkItemRepositoryInterface defines the interface for work item repository operations
type WorkItemRepositoryInterface interface {
	Create(item *models.WorkItem) error
	GetByID(tenantID, id int64) (*models.WorkItem, error)
	GetAll(tenantID int64) ([]models.WorkItem, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	Delete(tenantID, id int64) error
}

// StockRepositoryInterface defines the interface for stock repository operations
type StockRepositoryInterface interface {
	Create(stock *models.Stock) error
	GetByID(tenantID, id int64) (*models.Stock, error)
	GetAll(tenantID int64) ([]models.Stock, error)
	Exists(tenantID, id int64) (bool, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	AdjustQuantity(tenantID, id int64, delta int) (*models.Stock, error)
	Delete(tenantID, id int64) error
	DeleteAll(tenantID int64) (int64, error)
}

// SuggestionRepositoryInterface defines the interface for suggestion repository operations
type SuggestionRepositoryInterface interface {
	Create(suggestion *models.Suggestion) error
	GetByID(tenantID, id int64) (*models.Suggestion, error)
	GetAll(tenantID int64) ([]models.Suggestion, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	Delete(tenantID, id int64) error
	GetAllTenants() ([]models.Suggestion, error)
	GetByIDAnyTenant(id int64) (*models.Suggestion, error)
	Review(id int64, status models.SuggestionStatus, response string, reviewedAt time.Time) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByRecipient(tenantID int64, username string) ([]models.Notification, error)
	MarkRead(tenantID int64, username string, id int64) error
	MarkAllRead(tenantID int64, username string) (int64, error)
	Delete(tenantID int64, username string, id int64) error
}

// NotificationPreferenceRepositoryInterface defines the interface for notification preference repository operations
type NotificationPreferenceRepositoryInterface interface {
	GetOrCreate(tenantID int64, username string) (*models.NotificationPreference, error)
	Update(tenantID int64, username string, updates map[string]interface{}) error
}

// ActivityLogRepositoryInterface defines the interface for activity log repository operations
type ActivityLogRepositoryInterface interface {
	Create(entry *models.ActivityLog) error
	Recent(tenantID int64, limit int) ([]models.ActivityLog, error)
	DeleteOlderThan(tenantID int64, cutoff time.Time) (int64, error)
}

// WebhookRepositoryInterface defines the interface for webhook repository operations
type WebhookRepositoryInterface interface {
	Create(webhook *models.Webhook) error
	GetAll(tenantID int64) ([]models.Webhook, error)
	GetByID(tenantID, id int64) (*models.Webhook, error)
	GetByEvent(tenantID int64, event string) ([]models.Webhook, error)
	Update(tenantID, id int64, updates map[string]interface{}) error
	Delete(tenantID, id int64) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	UsernameExists(username string) (bool, error)
	TenantIDExists(tenantID int64) (bool, error)
	Update(id int64, updates map[string]interface{}) error
	Delete(id int64) error
}

// MembershipRequestRepositoryInterface defines the interface for membership request repository operations
type MembershipRequestRepositoryInterface interface {
	Create(request *models.MembershipRequest) error
	GetByID(id int64) (*models.MembershipRequest, error)
	GetAll() ([]models.MembershipRequest, error)
	HasPending(userID int64) (bool, error)
	Approve(id int64, response string, membershipEnd time.Time) error
	Reject(id int64, response string) error
}

// BackupRepositoryInterface defines the interface for backup restore operations
type BackupRepositoryInterface interface {
	Restore(tenantID int64, cards []models.Card, quotes []models.Quote, stock []models.Stock) error
}

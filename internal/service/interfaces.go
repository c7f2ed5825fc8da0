package service

import (
	"context"

	"garage-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Auditor records activity log entries on behalf of other services
type Auditor interface {
	Record(ctx context.Context, tenantID int64, action, note string)
}

// EventPublisher delivers domain events to subscribed webhooks without blocking
type EventPublisher interface {
	Publish(ctx context.Context, tenantID int64, event string, data interface{})
}

// Notifier creates user notifications
type Notifier interface {
	Notify(ctx context.Context, tenantID int64, n NewNotification) (*models.Notification, error)
}

// Pusher sends a stored notification to the recipient's live connections
type Pusher interface {
	Push(tenantID int64, username string, notification *models.Notification)
}

// CardServiceInterface defines the interface for card service
type CardServiceInterface interface {
	Create(ctx context.Context, tenantID int64, req *CreateCardRequest) (*models.Card, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.Card, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.Card, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateVehicleRequest) (*models.Card, error)
	ReplaceWorkItems(ctx context.Context, tenantID, id int64, inputs []WorkItemInput) (*models.Card, error)
	Delete(ctx context.Context, tenantID, id int64) error
	DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error)
}

// QuoteServiceInterface defines the interface for quote service
type QuoteServiceInterface interface {
	Create(ctx context.Context, tenantID int64, req *CreateQuoteRequest) (*models.Quote, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.Quote, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.Quote, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateVehicleRequest) (*models.Quote, error)
	ReplaceWorkItems(ctx context.Context, tenantID, id int64, inputs []WorkItemInput) (*models.Quote, error)
	Delete(ctx context.Context, tenantID, id int64) error
	DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error)
	ConvertToCard(ctx context.Context, tenantID, id int64) (*models.Card, error)
}

// WorkItemServiceInterface defines the interface for work item service
type WorkItemServiceInterface interface {
	Create(ctx context.Context, tenantID int64, req *CreateWorkItemRequest) (*models.WorkItem, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.WorkItem, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.WorkItem, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateWorkItemRequest) (*models.WorkItem, error)
	Delete(ctx context.Context, tenantID, id int64) error
}

// StockServiceInterface defines the interface for stock service
type StockServiceInterface interface {
	Create(ctx context.Context, tenantID int64, req *CreateStockRequest) (*models.Stock, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.Stock, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.Stock, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateStockRequest) (*models.Stock, error)
	AdjustQuantity(ctx context.Context, tenantID, id int64, operation string) (*models.Stock, error)
	Delete(ctx context.Context, tenantID, id int64) error
	DeleteAll(ctx context.Context, tenantID int64) (*DeleteAllResponse, error)
}

// SuggestionServiceInterface defines the interface for suggestion service
type SuggestionServiceInterface interface {
	Create(ctx context.Context, tenantID int64, req *CreateSuggestionRequest) (*models.Suggestion, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.Suggestion, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.Suggestion, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateSuggestionRequest) (*models.Suggestion, error)
	Delete(ctx context.Context, tenantID, id int64) error
	ListForReview(ctx context.Context) ([]models.Suggestion, error)
	Approve(ctx context.Context, id int64, req *ReviewSuggestionRequest) (*models.Suggestion, error)
	Reject(ctx context.Context, id int64, req *ReviewSuggestionRequest) (*models.Suggestion, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Notify(ctx context.Context, tenantID int64, n NewNotification) (*models.Notification, error)
	List(ctx context.Context, tenantID int64, username string) ([]models.Notification, error)
	MarkRead(ctx context.Context, tenantID int64, username string, id int64) error
	MarkAllRead(ctx context.Context, tenantID int64, username string) (*MarkAllReadResponse, error)
	Delete(ctx context.Context, tenantID int64, username string, id int64) error
	GetPreferences(ctx context.Context, tenantID int64, username string) (*models.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, tenantID int64, username string, req *UpdatePreferencesRequest) (*models.NotificationPreference, error)
}

// ActivityLogServiceInterface defines the interface for activity log service
type ActivityLogServiceInterface interface {
	Record(ctx context.Context, tenantID int64, action, note string)
	Create(ctx context.Context, tenantID int64, req *CreateLogRequest) (*SuccessResponse, error)
	Recent(ctx context.Context, tenantID int64, limit int) ([]models.ActivityLog, error)
	Prune(ctx context.Context, tenantID int64, days int) (int64, error)
}

// WebhookServiceInterface defines the interface for webhook service
type WebhookServiceInterface interface {
	Register(ctx context.Context, tenantID int64, req *RegisterWebhookRequest) (*RegisterWebhookResponse, error)
	GetAll(ctx context.Context, tenantID int64) ([]models.Webhook, error)
	GetByID(ctx context.Context, tenantID, id int64) (*models.Webhook, error)
	Update(ctx context.Context, tenantID, id int64, req *UpdateWebhookRequest) (*models.Webhook, error)
	Delete(ctx context.Context, tenantID, id int64) error
	Trigger(ctx context.Context, tenantID int64, event string, data interface{}) (*TriggerResponse, error)
	Publish(ctx context.Context, tenantID int64, event string, data interface{})
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*models.User, error)
	Membership(ctx context.Context, userID int64) (*MembershipInfo, error)
	MembershipActive(ctx context.Context, userID int64) (bool, error)
	SelectPlan(ctx context.Context, userID int64, req *SelectPlanRequest) (*models.MembershipRequest, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetActive(ctx context.Context, id int64, req *SetActiveRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	AddMembership(ctx context.Context, id int64, req *AddMembershipRequest) (*models.User, error)
	ListMembershipRequests(ctx context.Context) ([]models.MembershipRequest, error)
	ApproveMembershipRequest(ctx context.Context, id int64, req *ReviewMembershipRequest) (*models.MembershipRequest, error)
	RejectMembershipRequest(ctx context.Context, id int64, req *ReviewMembershipRequest) (*models.MembershipRequest, error)
}

// BackupServiceInterface defines the interface for backup service
type BackupServiceInterface interface {
	Create(ctx context.Context, tenantID int64) (*BackupDocument, error)
	Restore(ctx context.Context, tenantID int64, payload []byte) (*RestoreResponse, error)
	List(ctx context.Context, tenantID int64) ([]BackupInfo, error)
}

// ArchiveServiceInterface defines the interface for archive service
type ArchiveServiceInterface interface {
	ArchiveCards(ctx context.Context, tenantID int64, daysOld int) (*ArchiveCardsResponse, error)
	ArchiveLogs(ctx context.Context, tenantID int64, daysOld int) (*ArchiveLogsResponse, error)
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Send(ctx context.Context, req *ContactRequest) (*ContactResponse, error)
}

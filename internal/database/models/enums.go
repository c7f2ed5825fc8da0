package models

// SuggestionStatus is the review state of a suggestion
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

// MembershipRequestStatus is the review state of a membership request
type MembershipRequestStatus string

const (
	MembershipRequestPending  MembershipRequestStatus = "pending"
	MembershipRequestApproved MembershipRequestStatus = "approved"
	MembershipRequestRejected MembershipRequestStatus = "rejected"
)

// NotificationType tags a notification with its category
type NotificationType string

const (
	NotificationTypeOneriApproved       NotificationType = "oneri_approved"
	NotificationTypeOneriRejected       NotificationType = "oneri_rejected"
	NotificationTypeMembershipApproved  NotificationType = "membership_approved"
	NotificationTypeMembershipRejected  NotificationType = "membership_rejected"
	NotificationTypePaymentReminder     NotificationType = "payment_reminder"
	NotificationTypeMaintenanceReminder NotificationType = "maintenance_reminder"
	NotificationTypeContactMessage      NotificationType = "contact_message"
)

// UserRole is the authorization role of an account
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// StockOperation is a single-unit quantity adjustment
type StockOperation string

const (
	StockOperationIncrement StockOperation = "increment"
	StockOperationDecrement StockOperation = "decrement"
)

// Audit actions recorded in the activity log
const (
	ActionLogin       = "login"
	ActionLogout      = "logout"
	ActionCardCreate  = "card_create"
	ActionCardEdit    = "card_edit"
	ActionCardDelete  = "card_delete"
	ActionQuoteCreate = "teklif_create"
	ActionQuoteEdit   = "teklif_edit"
	ActionQuoteDelete = "teklif_delete"
	ActionStockCreate = "stok_create"
	ActionStockUpdate = "stok_update"
	ActionStockDelete = "stok_delete"
)

// IsValid checks if the SuggestionStatus is valid
func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApproved, SuggestionStatusRejected:
		return true
	}
	return false
}

// IsValid checks if the MembershipRequestStatus is valid
func (s MembershipRequestStatus) IsValid() bool {
	switch s {
	case MembershipRequestPending, MembershipRequestApproved, MembershipRequestRejected:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the StockOperation is valid
func (o StockOperation) IsValid() bool {
	switch o {
	case StockOperationIncrement, StockOperationDecrement:
		return true
	}
	return false
}

// Delta returns the quantity change applied by the operation
func (o StockOperation) Delta() int {
	if o == StockOperationDecrement {
		return -1
	}
	return 1
}

package models

import "time"

// Notification is addressed to one user of one tenant
type Notification struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	Username  string           `json:"username" gorm:"size:100;not null;index"`
	Title     string           `json:"title" gorm:"type:text;not null"`
	Message   string           `json:"message" gorm:"type:text;not null"`
	Content   *string          `json:"content" gorm:"type:text"`
	IsRead    bool             `json:"isRead" gorm:"not null"`
	Type      NotificationType `json:"type" gorm:"type:varchar(50)"`
	CreatedAt time.Time        `json:"createdAt" gorm:"index"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notification"
}

// NotificationPreference holds one user's per-category delivery toggles.
// Defaults are assigned in code; a gorm default tag would swallow explicit false values.
type NotificationPreference struct {
	ID                  int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID            int64     `json:"tenant_id" gorm:"not null;uniqueIndex:idx_notification_preference_owner"`
	Username            string    `json:"username" gorm:"size:100;not null;uniqueIndex:idx_notification_preference_owner"`
	EmailEnabled        bool      `json:"emailEnabled" gorm:"not null"`
	SmsEnabled          bool      `json:"smsEnabled" gorm:"not null"`
	OneriApproved       bool      `json:"oneriApproved" gorm:"not null"`
	OneriRejected       bool      `json:"oneriRejected" gorm:"not null"`
	PaymentReminder     bool      `json:"paymentReminder" gorm:"not null"`
	MaintenanceReminder bool      `json:"maintenanceReminder" gorm:"not null"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// TableName returns the table name for NotificationPreference
func (NotificationPreference) TableName() string {
	return "notification_preference"
}

// DefaultNotificationPreference returns the row created on first access
func DefaultNotificationPreference(tenantID int64, username string) *NotificationPreference {
	return &NotificationPreference{
		TenantID:            tenantID,
		Username:            username,
		EmailEnabled:        true,
		SmsEnabled:          false,
		OneriApproved:       true,
		OneriRejected:       true,
		PaymentReminder:     true,
		MaintenanceReminder: true,
	}
}

// Allows reports whether a notification of the given type should be created
func (p *NotificationPreference) Allows(t NotificationType) bool {
	switch t {
	case NotificationTypeOneriApproved:
		return p.OneriApproved
	case NotificationTypeOneriRejected:
		return p.OneriRejected
	case NotificationTypePaymentReminder:
		return p.PaymentReminder
	case NotificationTypeMaintenanceReminder:
		return p.MaintenanceReminder
	}
	return true
}

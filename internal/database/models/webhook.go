package models

import "time"

// Webhook is a tenant's subscription of a target URL to a set of event names
type Webhook struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Events    []string  `json:"events" gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for Webhook
func (Webhook) TableName() string {
	return "webhook"
}

// Subscribes reports whether the registration listens to event
func (w *Webhook) Subscribes(event string) bool {
	for _, e := range w.Events {
		if e == event {
			return true
		}
	}
	return false
}

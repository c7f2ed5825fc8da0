package models

import "time"

// ActivityLog is an append-only audit row
type ActivityLog struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	Username   string    `json:"username" gorm:"size:100;not null"`
	Action     string    `json:"action" gorm:"type:varchar(20);not null"`
	Duzenleyen *string   `json:"duzenleyen" gorm:"type:text"`
	IPAddress  *string   `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent  *string   `json:"user_agent" gorm:"type:text"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null;index"`
}

// TableName returns the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "log_entity"
}

package models

import "time"

// Suggestion (oneri) is a user-submitted improvement proposal reviewed by an admin
type Suggestion struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	OneriBaslik   string           `json:"oneriBaslik" gorm:"size:255;not null"`
	SorunTanimi   string           `json:"sorunTanimi" gorm:"type:text;not null"`
	MevcutCozum   string           `json:"mevcutCozum" gorm:"type:text;not null"`
	EtkiAlani     []string         `json:"etkiAlani" gorm:"type:jsonb;serializer:json;not null"`
	EkNot         *string          `json:"ekNot"`
	Username      string           `json:"username" gorm:"size:100;not null"`
	Tarih         time.Time        `json:"tarih" gorm:"not null;index"`
	Status        SuggestionStatus `json:"status" gorm:"type:varchar(20);not null"`
	AdminResponse *string          `json:"admin_response" gorm:"type:text"`
	ReviewedAt    *time.Time       `json:"reviewed_at"`
}

// TableName returns the table name for Suggestion
func (Suggestion) TableName() string {
	return "oneri"
}

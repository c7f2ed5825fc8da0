package models

import (
	"time"
)

// TenantModel is embedded by every tenant-owned row. The column is never
// populated from request input; repositories stamp it from the caller's scope.
type TenantModel struct {
	TenantID int64 `json:"tenant_id" gorm:"not null;index"`
}

// Vehicle holds the descriptive fields shared by cards and quotes
type Vehicle struct {
	AdSoyad        string `json:"adSoyad" gorm:"size:200;not null"`
	TelNo          string `json:"telNo" gorm:"size:50;not null"`
	MarkaModel     string `json:"markaModel" gorm:"size:200;not null"`
	Plaka          string `json:"plaka" gorm:"size:50;not null;index"`
	Sasi           string `json:"sasi" gorm:"size:100;not null"`
	Renk           string `json:"renk" gorm:"size:50;not null"`
	GirisTarihi    string `json:"girisTarihi" gorm:"size:50;not null"`
	Notlar         string `json:"notlar" gorm:"type:text;not null"`
	Adres          string `json:"adres" gorm:"type:text;not null"`
	OdemeAlindi    bool   `json:"odemeAlindi" gorm:"not null"`
	PeriyodikBakim bool   `json:"periyodikBakim" gorm:"not null"`
	Duzenleyen     string `json:"duzenleyen" gorm:"size:200"`
}

// Timestamps tracks row creation and modification
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

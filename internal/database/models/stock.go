package models

import "time"

// DefaultMinStockLevel is applied when a stock item is created without a threshold
const DefaultMinStockLevel = 5

// Stock (stok) is an inventory item
type Stock struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	StokAdi         string    `json:"stokAdi" gorm:"size:255;not null"`
	Adet            int       `json:"adet" gorm:"not null"`
	Info            string    `json:"info" gorm:"type:text;not null"`
	EklenisTarihi   time.Time `json:"eklenisTarihi" gorm:"not null"`
	Kategori        *string   `json:"kategori" gorm:"size:100"`
	MinStokSeviyesi *int      `json:"minStokSeviyesi"`
}

// TableName returns the table name for Stock
func (Stock) TableName() string {
	return "stok"
}

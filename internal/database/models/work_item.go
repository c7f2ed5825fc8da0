package models

// WorkItem (yapilanlar) is a parts or labour line attached to a card or a quote.
// At most one of CardID and TeklifID is set.
type WorkItem struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	CardID      *int64 `json:"card_id,omitempty" gorm:"column:card_id;index"`
	TeklifID    *int64 `json:"teklif_id,omitempty" gorm:"column:teklif_id;index"`
	BirimAdedi  int    `json:"birimAdedi" gorm:"not null"`
	ParcaAdi    string `json:"parcaAdi" gorm:"size:255;not null"`
	BirimFiyati int    `json:"birimFiyati" gorm:"not null"`
	ToplamFiyat int    `json:"toplamFiyat" gorm:"not null"`
	StockID     *int64 `json:"stockId,omitempty" gorm:"column:stock_id"`
	IsFromStock bool   `json:"isFromStock" gorm:"not null"`
}

// TableName returns the table name for WorkItem
func (WorkItem) TableName() string {
	return "yapilanlar"
}

package models

// Quote (teklif) is a pre-commitment estimate, structurally parallel to Card
type Quote struct {
	ID int64 `json:"teklif_id" gorm:"column:teklif_id;primaryKey;autoIncrement"`
	TenantModel
	Vehicle
	Km        *int `json:"km"`
	ModelYili *int `json:"modelYili"`
	Timestamps

	Yapilanlar []WorkItem `json:"yapilanlar" gorm:"foreignKey:TeklifID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Quote
func (Quote) TableName() string {
	return "teklif"
}

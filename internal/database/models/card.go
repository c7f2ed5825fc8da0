package models

// Card is a vehicle intake record. Deleting a card removes its work items
// through the foreign key cascade.
type Card struct {
	ID int64 `json:"card_id" gorm:"column:card_id;primaryKey;autoIncrement"`
	TenantModel
	Vehicle
	Km        int `json:"km" gorm:"not null"`
	ModelYili int `json:"modelYili" gorm:"not null"`
	Timestamps

	Yapilanlar []WorkItem `json:"yapilanlar" gorm:"foreignKey:CardID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Card
func (Card) TableName() string {
	return "card"
}

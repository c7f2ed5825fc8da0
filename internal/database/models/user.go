package models

import "time"

// User is a workshop account. Each account owns exactly one tenant.
type User struct {
	ID                int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantID          int64      `json:"tenant_id" gorm:"not null;uniqueIndex"`
	Username          string     `json:"username" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash      string     `json:"-" gorm:"size:100;not null"`
	Role              UserRole   `json:"role" gorm:"type:varchar(20);not null"`
	IsActive          bool       `json:"isActive" gorm:"not null"`
	MembershipEndDate *time.Time `json:"membershipEndDate"`

	FirmaAdi    string `json:"firmaAdi" gorm:"size:200"`
	YetkiliKisi string `json:"yetkiliKisi" gorm:"size:200"`
	Telefon     string `json:"telefon" gorm:"size:50"`
	Email       string `json:"email" gorm:"size:255"`
	Adres       string `json:"adres" gorm:"type:text"`
	VergiNo     string `json:"vergiNo" gorm:"size:50"`

	Timestamps
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// MembershipActive reports whether the account may use tenant data at t
func (u *User) MembershipActive(t time.Time) bool {
	if !u.IsActive {
		return false
	}
	return u.MembershipEndDate != nil && u.MembershipEndDate.After(t)
}

// MembershipRequest is a user's request for a paid membership period
type MembershipRequest struct {
	ID int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	TenantModel
	UserID        int64                   `json:"user_id" gorm:"not null;index"`
	User          *User                   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Username      string                  `json:"username" gorm:"size:100;not null"`
	Months        int                     `json:"months" gorm:"not null"`
	Status        MembershipRequestStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AdminResponse *string                 `json:"admin_response" gorm:"type:text"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// TableName returns the table name for MembershipRequest
func (MembershipRequest) TableName() string {
	return "membership_request"
}

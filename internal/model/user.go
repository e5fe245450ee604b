package model

import "time"

type User struct {
	ID           string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username     string       `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	Email        string       `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password     string       `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string       `gorm:"type:varchar(255)" json:"fullName"`
	LastLogin    *time.Time   `json:"lastLogin"`
	LoginCount   int          `gorm:"not null;default:0" json:"loginCount"`
	LoginHistory []LoginEvent `gorm:"constraint:OnDelete:CASCADE" json:"loginHistory,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"-"`
}

// LoginEvent is one successful authentication.
type LoginEvent struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UserID string    `gorm:"type:varchar(36);not null;index" json:"-"`
	At     time.Time `gorm:"not null;index" json:"at"`
	IP     *string   `gorm:"type:varchar(64)" json:"ip"`
}

// AuthClaims is the identity resolved from a bearer token.
type AuthClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	// Write-only from the client's perspective.
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	// nil means unlimited clearance.
	MaxClearanceLevel *int `json:"max_clearance_level"`
	Active            int  `gorm:"not null;default:1" json:"active"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

package models

import (
	"time"
)

// Settings is a single-row table (id = 1).
type Settings struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	AdminEmail          string    `gorm:"type:varchar(255);not null" json:"admin_email"`
	ReminderFreqMinutes int       `gorm:"not null;default:180" json:"reminder_freq_minutes"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"-"`
}

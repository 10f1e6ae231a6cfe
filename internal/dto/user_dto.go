package dto

import (
	"time"
)

// UserPublic is the directory view every authenticated user may see.
type UserPublic struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserAdminView adds the fields only admins are shown.
type UserAdminView struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	MaxClearanceLevel *int      `json:"max_clearance_level"`
	Active            int       `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

type UserCreate struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	Password          string `json:"password"`
	MaxClearanceLevel *int   `json:"max_clearance_level"`
}

type UserUpdate struct {
	Name              *string `json:"name"`
	Role              *string `json:"role"`
	Password          *string `json:"password"`
	MaxClearanceLevel *int    `json:"max_clearance_level"`
	ClearMaxClearance bool    `json:"clear_max_clearance_level"`
	Active            *int    `json:"active"`
}

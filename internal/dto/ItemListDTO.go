package dto

import (
	"time"
)

// ItemListRow is the flattened list/detail row: the item columns joined with
// its resolved location and the most recent ledger entry. This is the one
// response shape the catalog UI renders; optional fields are pointers so that
// "no movement yet" serializes as null instead of a zero value.
type ItemListRow struct {
	ID             uint       `json:"id"`
	SKU            string     `json:"sku,omitempty"`
	Name           string     `json:"name"`
	Unit           string     `json:"unit"`
	Category       string     `json:"category,omitempty"`
	Tag            string     `json:"tag,omitempty"`
	Note           string     `json:"note,omitempty"`
	ClearanceLevel int        `json:"clearance_level"`
	Quantity       int        `json:"quantity"`
	HeightMM       float64    `json:"height_mm,omitempty"`
	WidthMM        float64    `json:"width_mm,omitempty"`
	DepthMM        float64    `json:"depth_mm,omitempty"`
	AddedBy        string     `json:"added_by,omitempty"`
	IsDeleted      int        `json:"is_deleted"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ShelfID        *uint      `json:"shelf_id,omitempty"`
	SystemCode     *string    `gorm:"column:system_code" json:"system_code"`
	ShelfLabel     *string    `gorm:"column:shelf_label" json:"shelf_label"`
	MovementType   *string    `gorm:"column:movement_type" json:"movement_type"`
	HeldBy         *string    `gorm:"column:currently_held_by" json:"currently_held_by"`
	LastMovementTS *time.Time `gorm:"column:last_movement_ts" json:"last_movement_ts"`
	IsOut          bool       `gorm:"column:is_out" json:"is_out"`
}

// ItemPage is the paginated list envelope.
type ItemPage struct {
	Items    []ItemListRow `json:"items"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}

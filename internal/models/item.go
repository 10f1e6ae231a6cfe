package models

type Item struct {
	BaseModel
	// NULL when the item has no SKU; only assigned SKUs are unique.
	SKU            *string `gorm:"type:varchar(64);unique" json:"sku,omitempty"`
	Name           string  `gorm:"type:varchar(255);not null" json:"name"`
	Unit           string  `gorm:"type:varchar(32);not null;default:units" json:"unit"`
	Category       string  `gorm:"type:varchar(64)" json:"category,omitempty"`
	Tag            string  `gorm:"type:varchar(64)" json:"tag,omitempty"`
	Note           string  `gorm:"type:text" json:"note,omitempty"`
	ClearanceLevel int     `gorm:"not null;default:1;index" json:"clearance_level"`
	ShelfID        *uint   `gorm:"index" json:"shelf_id,omitempty"`
	// Cache of the signed movement quantities; maintained in the same
	// transaction as every ledger insert.
	Quantity int     `gorm:"not null;default:0;index" json:"quantity"`
	HeightMM float64 `json:"height_mm,omitempty"`
	WidthMM  float64 `json:"width_mm,omitempty"`
	DepthMM  float64 `json:"depth_mm,omitempty"`
	AddedBy  string  `gorm:"type:varchar(255)" json:"added_by,omitempty"`
}

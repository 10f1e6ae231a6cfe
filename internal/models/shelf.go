package models

type Shelf struct {
	BaseModel
	SystemID uint   `gorm:"index;not null;uniqueIndex:uniq_system_label" json:"system_id"`
	Label    string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_system_label" json:"label"`
	LengthMM int    `gorm:"not null" json:"length_mm"`
	WidthMM  int    `gorm:"not null" json:"width_mm"`
	HeightMM int    `gorm:"not null" json:"height_mm"`
	Ordinal  int    `gorm:"not null;default:1" json:"ordinal"`
	Items    []Item `gorm:"foreignKey:ShelfID" json:"items,omitempty"`
}

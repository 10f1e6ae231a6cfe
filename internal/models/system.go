package models

type System struct {
	BaseModel
	Code    string  `gorm:"type:varchar(64);not null;unique" json:"code"`
	Notes   string  `gorm:"type:text" json:"notes,omitempty"`
	Shelves []Shelf `gorm:"foreignKey:SystemID" json:"shelves,omitempty"`
}

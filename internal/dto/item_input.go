package dto

type ItemCreate struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	Tag            string  `json:"tag"`
	Note           string  `json:"note"`
	ClearanceLevel int     `json:"clearance_level"`
	SystemCode     string  `json:"system_code"`
	ShelfLabel     string  `json:"shelf_label"`
	HeightMM       float64 `json:"height_mm"`
	WidthMM        float64 `json:"width_mm"`
	DepthMM        float64 `json:"depth_mm"`
}

// ItemPatch uses pointers so absent fields are left untouched.
type ItemPatch struct {
	SKU            *string  `json:"sku"`
	Name           *string  `json:"name"`
	Unit           *string  `json:"unit"`
	Category       *string  `json:"category"`
	Tag            *string  `json:"tag"`
	Note           *string  `json:"note"`
	ClearanceLevel *int     `json:"clearance_level"`
	SystemCode     *string  `json:"system_code"`
	ShelfLabel     *string  `json:"shelf_label"`
	HeightMM       *float64 `json:"height_mm"`
	WidthMM        *float64 `json:"width_mm"`
	DepthMM        *float64 `json:"depth_mm"`
}

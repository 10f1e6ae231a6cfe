package dto

import (
	"Shelved/internal/models"
)

type StatsSummary struct {
	TotalItems      int64 `json:"total_items"`
	ActiveItems     int64 `json:"active_items"`
	DeletedItems    int64 `json:"deleted_items"`
	AvailableItems  int64 `json:"available_items"`
	CheckedOutItems int64 `json:"checked_out_items"`
}

type SystemBreakdown struct {
	SystemCode    string `json:"system_code"`
	ItemCount     int64  `json:"item_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

type Dashboard struct {
	Summary         StatsSummary      `json:"summary"`
	BySystem        []SystemBreakdown `json:"by_system"`
	RecentMovements []models.Movement `json:"recent_movements"`
}

type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportSummary struct {
	Inserted int              `json:"inserted"`
	Updated  int              `json:"updated"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}

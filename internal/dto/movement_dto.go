package dto

import (
	"time"

	"Shelved/internal/models"
)

type ReceiveInput struct {
	ItemID  uint   `json:"item_id"`
	ShelfID uint   `json:"shelf_id"`
	Qty     int    `json:"qty"`
	Note    string `json:"note"`
}

type IssueInput struct {
	ItemID  uint       `json:"item_id"`
	ShelfID uint       `json:"shelf_id"`
	Qty     int        `json:"qty"`
	Holder  string     `json:"holder"`
	DueAt   *time.Time `json:"due_at"`
	Note    string     `json:"note"`
}

type ReturnInput struct {
	ItemID  uint   `json:"item_id"`
	ShelfID uint   `json:"shelf_id"`
	Qty     int    `json:"qty"`
	Holder  string `json:"holder"`
	Note    string `json:"note"`
}

type AdjustInput struct {
	ItemID   uint   `json:"item_id"`
	ShelfID  uint   `json:"shelf_id"`
	QtyDelta int    `json:"qty_delta"`
	Note     string `json:"note"`
}

type TransferInput struct {
	ItemID      uint   `json:"item_id"`
	FromShelfID uint   `json:"from_shelf_id"`
	ToShelfID   uint   `json:"to_shelf_id"`
	Qty         int    `json:"qty"`
	Note        string `json:"note"`
}

type MovementFilter struct {
	ItemID   *uint
	Kind     string
	Holder   string
	ShelfID  *uint
	DateFrom string
	DateTo   string
	Page     int
	PageSize int
}

type MovementPage struct {
	Items    []models.Movement `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
}

// HolderOutstanding reports the net issued quantity a holder still has out.
type HolderOutstanding struct {
	ItemID uint   `json:"item_id"`
	SKU    string `json:"sku,omitempty"`
	Name   string `json:"name"`
	Holder string `json:"holder"`
	QtyOut int    `json:"qty_out"`
}

type OverdueRow struct {
	MovementID uint       `json:"movement_id"`
	ItemID     uint       `json:"item_id"`
	SKU        string     `json:"sku,omitempty"`
	Name       string     `json:"name"`
	Holder     string     `json:"holder"`
	QtyOut     int        `json:"qty_out"`
	DueAt      *time.Time `json:"due_at"`
	SystemCode *string    `json:"system_code"`
	ShelfLabel *string    `json:"shelf_label"`
}

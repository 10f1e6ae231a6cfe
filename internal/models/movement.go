package models

import (
	"time"
)

const (
	MovementReceive  = "receive"
	MovementIssue    = "issue"
	MovementReturn   = "return"
	MovementAdjust   = "adjust"
	MovementTransfer = "transfer"
)

// Movement is one append-only ledger row. Quantity is signed:
// receive/return are positive, issue is negative, adjust is either,
// transfer uses two rows (negative at the source shelf, positive at the
// destination).
type Movement struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ItemID      uint       `gorm:"index;not null" json:"item_id"`
	Kind        string     `gorm:"type:varchar(16);not null;index" json:"kind"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	ShelfID     *uint      `gorm:"index" json:"shelf_id,omitempty"`
	Holder      string     `gorm:"type:varchar(255);index" json:"holder,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	ActorUserID *uint      `json:"actor_user_id,omitempty"`
	Note        string     `gorm:"type:text" json:"note,omitempty"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	Timestamp   time.Time  `gorm:"autoCreateTime;index" json:"timestamp"`
}

func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementReceive, MovementIssue, MovementReturn, MovementAdjust, MovementTransfer:
		return true
	}
	return false
}

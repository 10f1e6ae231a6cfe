package services

import (
	"Shelved/internal/models"
)

type Action string

const (
	ActionView     Action = "view"
	ActionEdit     Action = "edit"
	ActionReceive  Action = "receive"
	ActionIssue    Action = "issue"
	ActionReturn   Action = "return"
	ActionAdjust   Action = "adjust"
	ActionTransfer Action = "transfer"
	ActionDelete   Action = "delete"
	ActionRestore  Action = "restore"
)

// ItemState is the lifecycle-relevant slice of an item: archived or not,
// cached quantity, and whether any holder has outstanding issued quantity.
type ItemState struct {
	IsDeleted bool
	Quantity  int
	IsOut     bool
}

// AllowedActions maps a role and item state to the set of permitted actions.
// This is a rendering and pre-flight contract; the handlers enforce the same
// rules server-side. Guests (no session) can only view.
func AllowedActions(role string, state ItemState) map[Action]bool {
	actions := map[Action]bool{ActionView: true}
	if role != models.RoleUser && role != models.RoleAdmin {
		return actions
	}

	if state.IsDeleted {
		// Archived items are frozen: no edits, no movements. Admins may
		// bring them back.
		if role == models.RoleAdmin {
			actions[ActionRestore] = true
		}
		return actions
	}

	actions[ActionEdit] = true
	actions[ActionReceive] = true
	actions[ActionReturn] = true
	actions[ActionTransfer] = true
	if state.Quantity > 0 {
		actions[ActionIssue] = true
	}
	if role == models.RoleAdmin {
		actions[ActionAdjust] = true
		// Delete stays unavailable while stock is on hand or out with a
		// holder; the item must reconcile to zero first.
		if state.Quantity == 0 && !state.IsOut {
			actions[ActionDelete] = true
		}
	}
	return actions
}

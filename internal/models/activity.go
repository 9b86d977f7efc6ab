package models

import "time"

// Activity action types.
const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionComplete = "complete"
)

// Activity item types.
const (
	ItemTask = "task"
	ItemNote = "note"
)

// ActivityEntry is one append-only audit row. ItemID is a weak reference:
// the referenced task or note may already be deleted.
type ActivityEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ActionType  string `gorm:"not null" json:"action_type"`
	ItemType    string `gorm:"not null" json:"item_type"`
	ItemID      uint   `json:"item_id"`
	Description string `json:"description"`
}

package models

import "time"

// DefaultNoteColor is the swatch applied when a note is created without one.
const DefaultNoteColor = "#ffd700"

// Note represents a sticky note. Pinned notes sort before unpinned ones.
type Note struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `gorm:"not null" json:"title"`
	Content  string `json:"content"`
	Color    string `gorm:"default:#ffd700" json:"color"`
	IsPinned bool   `gorm:"default:false" json:"is_pinned"`
	Category string `gorm:"default:general" json:"category"`
}

package models

import (
	"strings"
	"time"
)

// Task statuses. Status drives both kanban column placement and
// completion bookkeeping.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a todo item
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"default:todo" json:"status"`
	Priority    string     `gorm:"default:medium" json:"priority"`
	Tags        string     `json:"tags"` // comma-delimited, split client-side
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"` // non-nil iff Status == done
	TimeSpent   int        `gorm:"default:0" json:"time_spent"` // minutes, manually edited
	Category    string     `gorm:"default:general" json:"category"`
}

// TagList splits the comma-delimited tag string into individual labels.
func (t Task) TagList() []string {
	var tags []string
	for _, part := range strings.Split(t.Tags, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

package models

import "time"

// PomodoroSession records one finished (or abandoned) focus interval.
// TaskID is a weak reference with no integrity enforcement.
type PomodoroSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TaskID    *uint `json:"task_id"`
	Duration  int   `json:"duration"` // minutes
	Completed bool  `gorm:"default:false" json:"completed"`
}

package db

import (
	"time"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

// TaskTotals summarizes the task collection by status.
type TaskTotals struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"in_progress"`
	Todo       int64 `json:"todo"`
	TotalTime  int64 `json:"total_time"` // sum of time_spent, minutes
}

// NoteTotals summarizes the note collection.
type NoteTotals struct {
	Total int64 `json:"total"`
}

// PriorityCount is one row of the priority breakdown. Only priorities
// actually present appear.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Statistics is the composite dashboard result.
type Statistics struct {
	Tasks          TaskTotals      `json:"tasks"`
	Notes          NoteTotals      `json:"notes"`
	Priority       []PriorityCount `json:"priority"`
	Categories     []CategoryCount `json:"categories"`
	CompletedToday int64           `json:"completedToday"`
}

// ExportData is the full downloadable snapshot.
type ExportData struct {
	Tasks      []models.Task `json:"tasks"`
	Notes      []models.Note `json:"notes"`
	ExportDate string        `json:"exportDate"`
}

// GetStatistics computes the summary counts in one pass per table. All
// counts are zero for empty collections.
func GetStatistics() (*Statistics, error) {
	stats := Statistics{
		Priority:   []PriorityCount{},
		Categories: []CategoryCount{},
	}

	err := DB.Model(&models.Task{}).
		Select(`COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'done' THEN 1 ELSE 0 END), 0) as completed,
			COALESCE(SUM(CASE WHEN status = 'in-progress' THEN 1 ELSE 0 END), 0) as in_progress,
			COALESCE(SUM(CASE WHEN status = 'todo' THEN 1 ELSE 0 END), 0) as todo,
			COALESCE(SUM(time_spent), 0) as total_time`).
		Scan(&stats.Tasks).Error
	if err != nil {
		return nil, err
	}

	if err := DB.Model(&models.Note{}).Count(&stats.Notes.Total).Error; err != nil {
		return nil, err
	}

	err = DB.Model(&models.Task{}).
		Select("priority, COUNT(*) as count").
		Group("priority").
		Scan(&stats.Priority).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Task{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&stats.Categories).Error
	if err != nil {
		return nil, err
	}

	// Server-local calendar day, not UTC.
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	err = DB.Model(&models.Task{}).
		Where("completed_at >= ? AND completed_at < ?", dayStart, dayEnd).
		Count(&stats.CompletedToday).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// Export returns the full task and note collections plus a generation
// timestamp. No pagination, no deltas: one snapshot.
func Export() (*ExportData, error) {
	tasks := []models.Task{}
	if err := DB.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}

	notes := []models.Note{}
	if err := DB.Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}

	return &ExportData{
		Tasks:      tasks,
		Notes:      notes,
		ExportDate: time.Now().Format(time.RFC3339),
	}, nil
}

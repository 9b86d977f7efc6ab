package db

import (
	"time"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

// SavePomodoroSession persists one focus interval. taskID may be nil;
// it is a weak reference and the task may be deleted later.
func SavePomodoroSession(taskID *uint, duration int, completed bool) (*models.PomodoroSession, error) {
	session := models.PomodoroSession{
		TaskID:    taskID,
		Duration:  duration,
		Completed: completed,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// CountSessionsToday returns how many completed sessions were recorded
// on the current server-local calendar day.
func CountSessionsToday() (int64, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := DB.Model(&models.PomodoroSession{}).
		Where("completed = ? AND created_at >= ?", true, dayStart).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

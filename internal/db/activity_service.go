package db

import (
	"github.com/taskmasterhq/taskmaster/internal/models"
)

// Retrieval sizes used by the clients: full timeline and the dashboard
// preview.
const (
	ActivityTimelineLimit = 50
	ActivityPreviewLimit  = 5
)

// LogActivity appends one audit entry. It is fire-and-forget: a failed
// write is logged and swallowed so it can never fail or roll back the
// mutation that triggered it.
func LogActivity(actionType, itemType string, itemID uint, description string) {
	entry := models.ActivityEntry{
		ActionType:  actionType,
		ItemType:    itemType,
		ItemID:      itemID,
		Description: description,
	}

	if err := DB.Create(&entry).Error; err != nil {
		log.Warn("failed to record activity", "action", actionType, "item", itemType, "id", itemID, "error", err)
	}
}

// GetRecentActivity returns the most recent entries, newest first.
// A non-positive limit falls back to the full timeline size.
func GetRecentActivity(limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = ActivityTimelineLimit
	}

	entries := []models.ActivityEntry{}
	// id breaks created_at ties so same-instant writes keep insert order.
	err := DB.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

package db

import (
	"gorm.io/gorm/clause"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

// GetSettings returns all settings as a flat key/value map.
func GetSettings() (map[string]string, error) {
	var rows []models.Setting
	if err := DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	return settings, nil
}

// GetSetting returns one setting value, or the fallback when the key is
// absent.
func GetSetting(key, fallback string) string {
	var row models.Setting
	if err := DB.First(&row, "key = ?", key).Error; err != nil {
		return fallback
	}
	return row.Value
}

// UpsertSetting inserts or replaces a setting by key.
func UpsertSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

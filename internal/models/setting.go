package models

import "time"

// Setting keys seeded at first startup.
const (
	SettingTheme                = "theme"
	SettingSoundEnabled         = "sound_enabled"
	SettingPomodoroDuration     = "pomodoro_duration"
	SettingNotificationsEnabled = "notifications_enabled"
)

// Setting is a key-value pair upserted by key.
type Setting struct {
	Key       string    `gorm:"primarykey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

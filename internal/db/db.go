package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskmasterhq/taskmaster/internal/models"
)

var DB *gorm.DB

var log hclog.Logger = hclog.NewNullLogger()

// SetLogger installs the logger used for non-fatal store events, most
// notably activity-write failures.
func SetLogger(l hclog.Logger) {
	log = l
}

// Initialize sets up the database connection, runs migrations and seeds
// the default settings.
func Initialize(dbPath string) error {
	// Ensure the directory exists
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return open(dbPath)
}

// InitializeInMemory opens a throwaway in-memory database. Used by tests.
func InitializeInMemory() error {
	return open(":memory:")
}

func open(dbPath string) error {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db

	if err := runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedDefaultSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	return nil
}

// runMigrations creates/updates the database schema
func runMigrations() error {
	return DB.AutoMigrate(
		&models.Task{},
		&models.Note{},
		&models.ActivityEntry{},
		&models.PomodoroSession{},
		&models.Setting{},
	)
}

// seedDefaultSettings inserts the fixed seed set, leaving any existing
// values untouched.
func seedDefaultSettings() error {
	defaults := []models.Setting{
		{Key: models.SettingTheme, Value: "dark"},
		{Key: models.SettingSoundEnabled, Value: "true"},
		{Key: models.SettingPomodoroDuration, Value: "25"},
		{Key: models.SettingNotificationsEnabled, Value: "true"},
	}

	for _, setting := range defaults {
		var existing models.Setting
		if err := DB.First(&existing, "key = ?", setting.Key).Error; err == nil {
			continue
		}
		if err := DB.Create(&setting).Error; err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

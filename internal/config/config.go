// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Pomodoro PomodoroConfig `mapstructure:"pomodoro" yaml:"pomodoro"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen" yaml:"listen"` // host:port
}

// DatabaseConfig contains SQLite database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"` // SQLite file path
}

// PomodoroConfig contains default timer durations. Break minutes are
// stored for the client but not driven by any automatic transition.
type PomodoroConfig struct {
	WorkMinutes  int `mapstructure:"work_minutes" yaml:"work_minutes"`
	BreakMinutes int `mapstructure:"break_minutes" yaml:"break_minutes"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Listen: "127.0.0.1:3000"},
		Database: DatabaseConfig{},
		Pomodoro: PomodoroConfig{WorkMinutes: 25, BreakMinutes: 5},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// ConfigDir returns the directory holding the config file and, by
// default, the database.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskmaster"), nil
}

// Load loads configuration from ~/.taskmaster/config.yaml, falling back
// to defaults. Environment variables prefixed TASKMASTER_ override file
// values (e.g. TASKMASTER_SERVER_LISTEN).
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config dir: %w", err)
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(dir, "taskmaster.db")
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	v.SetConfigType("yaml")
	v.SetEnvPrefix("taskmaster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, everything has a default.
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	} else if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if listen := v.GetString("server.listen"); listen != "" {
		cfg.Server.Listen = listen
	}
	if path := v.GetString("database.path"); path != "" {
		cfg.Database.Path = path
	}
	if cfg.Pomodoro.WorkMinutes <= 0 {
		cfg.Pomodoro.WorkMinutes = 25
	}
	if cfg.Pomodoro.BreakMinutes <= 0 {
		cfg.Pomodoro.BreakMinutes = 5
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}

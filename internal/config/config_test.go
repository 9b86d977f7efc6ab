package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Listen)
	assert.Equal(t, 25, cfg.Pomodoro.WorkMinutes)
	assert.Equal(t, 5, cfg.Pomodoro.BreakMinutes)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Listen)
	assert.Contains(t, cfg.Database.Path, filepath.Join(".taskmaster", "taskmaster.db"))
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".taskmaster")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  listen: "0.0.0.0:8080"
pomodoro:
  work_minutes: 50
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Listen)
	assert.Equal(t, 50, cfg.Pomodoro.WorkMinutes)
	assert.Equal(t, 5, cfg.Pomodoro.BreakMinutes) // untouched default
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKMASTER_SERVER_LISTEN", "127.0.0.1:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Listen)
}

func TestLoadSanitizesNonPositiveDurations(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".taskmaster")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
pomodoro:
  work_minutes: -5
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Pomodoro.WorkMinutes)
}

package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB points the package-level DB at a fresh in-memory store.
func setupTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitializeInMemory())
	t.Cleanup(func() {
		_ = Close()
		DB = nil
	})
}

func TestInitializeSeedsDefaultSettings(t *testing.T) {
	setupTestDB(t)

	settings, err := GetSettings()
	require.NoError(t, err)

	require.Equal(t, "dark", settings["theme"])
	require.Equal(t, "true", settings["sound_enabled"])
	require.Equal(t, "25", settings["pomodoro_duration"])
	require.Equal(t, "true", settings["notifications_enabled"])
}

func TestSeedDoesNotOverwriteExistingSettings(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, UpsertSetting("theme", "light"))
	require.NoError(t, seedDefaultSettings())

	settings, err := GetSettings()
	require.NoError(t, err)
	require.Equal(t, "light", settings["theme"])
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitful/internal/ui/preferences"
)

func TestLoadSettingsFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "Fruitful", "settings.yaml")
	saved := preferences.Settings{
		Notifications: false,
		TerminalBell:  false,
		WindowSize:    480,
		LogLevel:      "debug",
	}

	require.NoError(t, SaveSettingsFile(configPath, saved))
	loaded, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("window_size: 9000\nterminal_bell: false\n"), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.NoError(t, err)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.TerminalBell)
	assert.Equal(t, float64(preferences.MaxWindowSize), settings.WindowSize)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadSettingsFileInvalidYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("window_size: [unterminated"), 0o644))

	settings, err := LoadSettingsFile(configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"clockreminder/internal/core/model"
	"clockreminder/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")

	settings := preferences.Settings{
		ClockIn:         model.TimeOfDay{Hour: 8, Minute: 45},
		ClockOut:        model.TimeOfDay{Hour: 17, Minute: 15},
		Use24Hour:       false,
		TimeZone:        "Europe/Paris",
		RemindersActive: true,
		ReminderCount:   12,
		LaunchAtLogin:   true,
		Presets: []preferences.Preset{
			{Name: "Office", ClockIn: model.TimeOfDay{Hour: 9}, ClockOut: model.TimeOfDay{Hour: 17}},
			{Name: "Early shift", ClockIn: model.TimeOfDay{Hour: 6, Minute: 30}, ClockOut: model.TimeOfDay{Hour: 14, Minute: 30}},
		},
	}

	require.NoError(t, saveSettingsFile(configPath, settings))

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsMissingFileYieldsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestLoadSettingsMalformedFileYieldsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{not yaml: ["), 0o644))

	loaded, err := loadSettingsFile(configPath)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestLoadSettingsSkipsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	raw := `clock_in: "99:99"
clock_out: "18:00"
time_format: "12h"
presets:
  - name: "Broken"
    clock_in: "nope"
    clock_out: "17:00"
  - name: "Good"
    clock_in: "10:00"
    clock_out: "18:00"
`
	require.NoError(t, os.WriteFile(configPath, []byte(raw), 0o644))

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)

	// Invalid clock-in keeps the default; the valid clock-out applies.
	assert.Equal(t, preferences.DefaultSettings().ClockIn, loaded.ClockIn)
	assert.Equal(t, model.TimeOfDay{Hour: 18}, loaded.ClockOut)
	assert.False(t, loaded.Use24Hour)

	// Presets with unparseable times are dropped.
	require.Len(t, loaded.Presets, 1)
	assert.Equal(t, "Good", loaded.Presets[0].Name)
}

package preferences

import (
	"testing"
	"time"

	"clockreminder/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPreset(t *testing.T) {
	settings := DefaultSettings()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	preset := settings.AddPreset("Office", now)
	assert.Equal(t, "Office", preset.Name)
	assert.Equal(t, settings.ClockIn, preset.ClockIn)
	require.Len(t, settings.Presets, 1)

	// Same name replaces instead of duplicating.
	settings.ClockIn = model.TimeOfDay{Hour: 10}
	settings.AddPreset("Office", now)
	require.Len(t, settings.Presets, 1)
	assert.Equal(t, model.TimeOfDay{Hour: 10}, settings.Presets[0].ClockIn)

	// Empty name derives one from the timestamp.
	preset = settings.AddPreset("  ", now)
	assert.Equal(t, "Preset 20260310093000", preset.Name)
	assert.Len(t, settings.Presets, 2)
}

func TestApplyPreset(t *testing.T) {
	settings := DefaultSettings()
	settings.Presets = []Preset{
		{Name: "Night", ClockIn: model.TimeOfDay{Hour: 22}, ClockOut: model.TimeOfDay{Hour: 6}},
	}

	require.True(t, settings.ApplyPreset("Night"))
	assert.Equal(t, model.TimeOfDay{Hour: 22}, settings.ClockIn)
	assert.Equal(t, model.TimeOfDay{Hour: 6}, settings.ClockOut)

	assert.False(t, settings.ApplyPreset("missing"))
}

func TestRemovePresetKeepsOrder(t *testing.T) {
	settings := DefaultSettings()
	now := time.Now()
	settings.AddPreset("a", now)
	settings.AddPreset("b", now)
	settings.AddPreset("c", now)

	require.True(t, settings.RemovePreset("b"))
	assert.Equal(t, []string{"a", "c"}, settings.PresetNames())
	assert.False(t, settings.RemovePreset("b"))
}

func TestScheduleConfigZoneFallback(t *testing.T) {
	settings := DefaultSettings()
	settings.TimeZone = "Atlantis/Nowhere"

	config, err := settings.ScheduleConfig()
	assert.Error(t, err)
	assert.Equal(t, time.Local, config.Location)
	assert.Equal(t, settings.ClockIn, config.ClockIn)

	settings.TimeZone = "UTC"
	config, err = settings.ScheduleConfig()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, config.Location)
}

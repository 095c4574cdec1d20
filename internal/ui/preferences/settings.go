package preferences

import (
	"strings"
	"time"

	"clockreminder/internal/core/model"
	"clockreminder/internal/core/schedule"
)

// Preset is a named clock-in/out time pair.
type Preset struct {
	Name     string
	ClockIn  model.TimeOfDay
	ClockOut model.TimeOfDay
}

// Settings defines editable user preferences.
type Settings struct {
	ClockIn   model.TimeOfDay
	ClockOut  model.TimeOfDay
	Use24Hour bool
	TimeZone  string
	Presets   []Preset

	RemindersActive bool
	ReminderCount   int
	LaunchAtLogin   bool
}

// DefaultSettings returns the first-run configuration.
func DefaultSettings() Settings {
	return Settings{
		ClockIn:   model.TimeOfDay{Hour: 9},
		ClockOut:  model.TimeOfDay{Hour: 17},
		Use24Hour: true,
		TimeZone:  "Local",
	}
}

// ScheduleConfig converts settings to the watcher configuration. An
// unresolvable time zone degrades to the local zone; the load failure
// is reported so the caller can log it.
func (settings Settings) ScheduleConfig() (model.ScheduleConfig, error) {
	location, err := schedule.ResolveLocation(settings.TimeZone)
	return model.ScheduleConfig{
		ClockIn:  settings.ClockIn,
		ClockOut: settings.ClockOut,
		Location: location,
	}, err
}

// AddPreset stores the current time pair under the given name,
// replacing an existing preset with the same name. An empty name gets
// a timestamp-derived one.
func (settings *Settings) AddPreset(name string, now time.Time) Preset {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Preset " + now.Format("20060102150405")
	}
	preset := Preset{Name: name, ClockIn: settings.ClockIn, ClockOut: settings.ClockOut}
	for i := range settings.Presets {
		if settings.Presets[i].Name == name {
			settings.Presets[i] = preset
			return preset
		}
	}
	settings.Presets = append(settings.Presets, preset)
	return preset
}

// ApplyPreset copies the named preset's times into the settings.
func (settings *Settings) ApplyPreset(name string) bool {
	for _, preset := range settings.Presets {
		if preset.Name == name {
			settings.ClockIn = preset.ClockIn
			settings.ClockOut = preset.ClockOut
			return true
		}
	}
	return false
}

// RemovePreset deletes the named preset, keeping order.
func (settings *Settings) RemovePreset(name string) bool {
	for i, preset := range settings.Presets {
		if preset.Name == name {
			settings.Presets = append(settings.Presets[:i], settings.Presets[i+1:]...)
			return true
		}
	}
	return false
}

// PresetNames lists preset names in stored order.
func (settings Settings) PresetNames() []string {
	names := make([]string, 0, len(settings.Presets))
	for _, preset := range settings.Presets {
		names = append(names, preset.Name)
	}
	return names
}

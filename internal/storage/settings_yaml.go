package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clockreminder/internal/core/schedule"
	"clockreminder/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const (
	timeFormat12 = "12h"
	timeFormat24 = "24h"
)

type yamlPreset struct {
	Name     string `yaml:"name"`
	ClockIn  string `yaml:"clock_in"`
	ClockOut string `yaml:"clock_out"`
}

type yamlSettings struct {
	ClockIn         string       `yaml:"clock_in"`
	ClockOut        string       `yaml:"clock_out"`
	TimeFormat      string       `yaml:"time_format"`
	TimeZone        string       `yaml:"time_zone"`
	RemindersActive bool         `yaml:"reminders_active"`
	ReminderCount   int          `yaml:"reminder_count"`
	LaunchAtLogin   bool         `yaml:"launch_at_login"`
	Presets         []yamlPreset `yaml:"presets"`
}

// LoadSettings reads user preferences from YAML. A missing file yields
// defaults; a malformed file yields defaults plus the parse error.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ClockIn:         settings.ClockIn.String(),
		ClockOut:        settings.ClockOut.String(),
		TimeFormat:      timeFormat24,
		TimeZone:        settings.TimeZone,
		RemindersActive: settings.RemindersActive,
		ReminderCount:   settings.ReminderCount,
		LaunchAtLogin:   settings.LaunchAtLogin,
	}
	if !settings.Use24Hour {
		fileData.TimeFormat = timeFormat12
	}
	for _, preset := range settings.Presets {
		fileData.Presets = append(fileData.Presets, yamlPreset{
			Name:     preset.Name,
			ClockIn:  preset.ClockIn.String(),
			ClockOut: preset.ClockOut.String(),
		})
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Stored times are always 24-hour HH:MM; unparseable values keep the
// default rather than failing the whole load.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if clockIn, err := schedule.ParseClock(fileData.ClockIn); err == nil {
		settings.ClockIn = clockIn
	}
	if clockOut, err := schedule.ParseClock(fileData.ClockOut); err == nil {
		settings.ClockOut = clockOut
	}
	if fileData.TimeFormat == timeFormat12 {
		settings.Use24Hour = false
	}
	if fileData.TimeZone != "" {
		settings.TimeZone = fileData.TimeZone
	}
	if fileData.ReminderCount > 0 {
		settings.ReminderCount = fileData.ReminderCount
	}
	settings.RemindersActive = fileData.RemindersActive
	settings.LaunchAtLogin = fileData.LaunchAtLogin

	for _, filePreset := range fileData.Presets {
		clockIn, inErr := schedule.ParseClock(filePreset.ClockIn)
		clockOut, outErr := schedule.ParseClock(filePreset.ClockOut)
		if filePreset.Name == "" || inErr != nil || outErr != nil {
			continue
		}
		settings.Presets = append(settings.Presets, preferences.Preset{
			Name:     filePreset.Name,
			ClockIn:  clockIn,
			ClockOut: clockOut,
		})
	}
}

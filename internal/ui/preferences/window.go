package preferences

import (
	"time"

	"clockreminder/internal/core/model"
	"clockreminder/internal/core/schedule"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	formatOption12 = "12-hour"
	formatOption24 = "24-hour"
)

// Zones offered in the picker; any IANA name read from the settings
// file works too.
var timeZoneOptions = []string{
	"Local",
	"US/Eastern", "US/Central", "US/Mountain", "US/Pacific",
	"Europe/London", "Europe/Paris",
	"Asia/Tokyo", "Australia/Sydney",
}

// Window handles the settings UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	clockInEntry     *widget.Entry
	clockOutEntry    *widget.Entry
	clockInMeridiem  *widget.Select
	clockOutMeridiem *widget.Select
	formatSelect     *widget.Select
	zoneSelect       *widget.Select
	presetName       *widget.Entry
	presetSelect     *widget.Select
	autostartCheck   *widget.Check
	hintLabel        *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("ClockReminder Settings")

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,
	}

	prefs.clockInEntry = widget.NewEntry()
	prefs.clockOutEntry = widget.NewEntry()
	prefs.clockInMeridiem = widget.NewSelect([]string{"AM", "PM"}, nil)
	prefs.clockOutMeridiem = widget.NewSelect([]string{"AM", "PM"}, nil)

	prefs.formatSelect = widget.NewSelect([]string{formatOption24, formatOption12}, func(string) {
		prefs.applyFormatMode()
	})

	prefs.zoneSelect = widget.NewSelect(timeZoneOptions, nil)

	prefs.presetName = widget.NewEntry()
	prefs.presetName.SetPlaceHolder("Preset name")
	prefs.presetSelect = widget.NewSelect(settings.PresetNames(), nil)

	prefs.autostartCheck = widget.NewCheck("Launch at login", nil)

	prefs.hintLabel = widget.NewLabel("")

	savePresetButton := widget.NewButton("Save as Preset", prefs.handleSavePreset)
	loadPresetButton := widget.NewButton("Load", prefs.handleLoadPreset)
	deletePresetButton := widget.NewButton("Delete", prefs.handleDeletePreset)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Reminder Times", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Clock in"), prefs.clockInEntry, prefs.clockInMeridiem),
		container.NewHBox(widget.NewLabel("Clock out"), prefs.clockOutEntry, prefs.clockOutMeridiem),
		prefs.hintLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Time format"), prefs.formatSelect),
		container.NewHBox(widget.NewLabel("Time zone"), prefs.zoneSelect),
		prefs.autostartCheck,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Presets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(prefs.presetName, savePresetButton),
		container.NewHBox(prefs.presetSelect, loadPresetButton, deletePresetButton),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 460))

	prefs.applySettings()
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.applySettings()
}

func (prefs *Window) applySettings() {
	if prefs.settings.Use24Hour {
		prefs.formatSelect.SetSelected(formatOption24)
	} else {
		prefs.formatSelect.SetSelected(formatOption12)
	}
	zone := prefs.settings.TimeZone
	if zone == "" {
		zone = "Local"
	}
	prefs.zoneSelect.SetSelected(zone)
	prefs.autostartCheck.SetChecked(prefs.settings.LaunchAtLogin)
	prefs.presetSelect.Options = prefs.settings.PresetNames()
	prefs.presetSelect.Refresh()
	prefs.applyFormatMode()
}

// applyFormatMode rewrites the time entries for the selected format
// and toggles the AM/PM selectors.
func (prefs *Window) applyFormatMode() {
	use24 := prefs.formatSelect.Selected != formatOption12

	prefs.clockInEntry.SetText(entryText(prefs.settings.ClockIn, use24))
	prefs.clockOutEntry.SetText(entryText(prefs.settings.ClockOut, use24))

	if use24 {
		prefs.clockInMeridiem.Hide()
		prefs.clockOutMeridiem.Hide()
		prefs.hintLabel.SetText("Format: HH:MM (24-hour)")
		return
	}
	prefs.clockInMeridiem.SetSelected(schedule.Meridiem(prefs.settings.ClockIn))
	prefs.clockOutMeridiem.SetSelected(schedule.Meridiem(prefs.settings.ClockOut))
	prefs.clockInMeridiem.Show()
	prefs.clockOutMeridiem.Show()
	prefs.hintLabel.SetText("Format: HH:MM (12-hour)")
}

func (prefs *Window) handleSave() {
	settings, ok := prefs.collect()
	if !ok {
		return
	}
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) handleSavePreset() {
	settings, ok := prefs.collect()
	if !ok {
		return
	}
	settings.AddPreset(prefs.presetName.Text, time.Now())
	prefs.settings = settings
	prefs.presetName.SetText("")
	prefs.presetSelect.Options = settings.PresetNames()
	prefs.presetSelect.Refresh()
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
}

func (prefs *Window) handleLoadPreset() {
	if !prefs.settings.ApplyPreset(prefs.presetSelect.Selected) {
		return
	}
	prefs.applyFormatMode()
}

func (prefs *Window) handleDeletePreset() {
	if !prefs.settings.RemovePreset(prefs.presetSelect.Selected) {
		return
	}
	prefs.presetSelect.ClearSelected()
	prefs.presetSelect.Options = prefs.settings.PresetNames()
	prefs.presetSelect.Refresh()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
}

// collect parses the widget values into a Settings copy. On invalid
// time input it surfaces the problem in the hint label and reports
// failure instead of saving.
func (prefs *Window) collect() (Settings, bool) {
	settings := prefs.settings
	use24 := prefs.formatSelect.Selected != formatOption12

	clockIn, err := parseEntry(prefs.clockInEntry.Text, prefs.clockInMeridiem.Selected, use24)
	if err != nil {
		prefs.hintLabel.SetText("Invalid clock-in time: " + prefs.clockInEntry.Text)
		return Settings{}, false
	}
	clockOut, err := parseEntry(prefs.clockOutEntry.Text, prefs.clockOutMeridiem.Selected, use24)
	if err != nil {
		prefs.hintLabel.SetText("Invalid clock-out time: " + prefs.clockOutEntry.Text)
		return Settings{}, false
	}

	settings.ClockIn = clockIn
	settings.ClockOut = clockOut
	settings.Use24Hour = use24
	settings.TimeZone = prefs.zoneSelect.Selected
	settings.LaunchAtLogin = prefs.autostartCheck.Checked
	return settings, true
}

func parseEntry(text, meridiem string, use24 bool) (model.TimeOfDay, error) {
	if use24 {
		return schedule.ParseClock(text)
	}
	return schedule.ParseClock12(text, meridiem)
}

func entryText(value model.TimeOfDay, use24 bool) string {
	if use24 {
		return value.String()
	}
	// 12-hour text without the AM/PM suffix; that lives in the select.
	formatted := schedule.FormatClock(value, false)
	return formatted[:len(formatted)-3]
}

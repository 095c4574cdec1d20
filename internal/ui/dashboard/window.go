package dashboard

import (
	"image"
	"image/color"
	"strconv"
	"time"

	"clockreminder/internal/core/model"
	"clockreminder/internal/core/schedule"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var accentColor = color.NRGBA{R: 0x31, G: 0x47, B: 0x3A, A: 0xFF}

// Callbacks defines dashboard action handlers.
type Callbacks struct {
	OnToggleReminders  func() bool
	OnTestNotification func()
	OnOpenPreferences  func()
}

// Window is the main application window: live clock, countdown to the
// next clock event, walking mascot, and reminder controls.
type Window struct {
	window         fyne.Window
	use24Hour      bool
	clockLabel     *canvas.Text
	nextEventLabel *widget.Label
	countdownLabel *canvas.Text
	progressBar    *widget.ProgressBar
	counterLabel   *canvas.Text
	statusLabel    *widget.Label
	toggleButton   *widget.Button
	mascotImage    *canvas.Image
}

// New creates the dashboard window.
func New(app fyne.App, use24Hour bool, active bool, callbacks Callbacks) *Window {
	window := app.NewWindow("Clock In/Out Reminder")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	mascotImage := canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	mascotImage.FillMode = canvas.ImageFillContain
	mascotImage.ScaleMode = canvas.ImageScalePixels
	mascotImage.SetMinSize(fyne.NewSize(224, 60))

	clockLabel := canvas.NewText("--:--:--", accentColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 28

	nextEventLabel := widget.NewLabel("")
	nextEventLabel.Alignment = fyne.TextAlignCenter

	countdownLabel := canvas.NewText("00:00:00", accentColor)
	countdownLabel.Alignment = fyne.TextAlignCenter
	countdownLabel.TextStyle = fyne.TextStyle{Bold: true}
	countdownLabel.TextSize = 20

	progressBar := widget.NewProgressBar()
	progressBar.TextFormatter = func() string { return "" }

	counterLabel := canvas.NewText("Reminder days: 0", accentColor)
	counterLabel.Alignment = fyne.TextAlignCenter
	counterLabel.TextSize = 14

	statusLabel := widget.NewLabel("Ready to start")
	statusLabel.Alignment = fyne.TextAlignCenter

	dash := &Window{
		window:         window,
		use24Hour:      use24Hour,
		clockLabel:     clockLabel,
		nextEventLabel: nextEventLabel,
		countdownLabel: countdownLabel,
		progressBar:    progressBar,
		counterLabel:   counterLabel,
		statusLabel:    statusLabel,
		mascotImage:    mascotImage,
	}

	dash.toggleButton = widget.NewButton("Start Reminders", func() {
		if callbacks.OnToggleReminders != nil {
			dash.applyActive(callbacks.OnToggleReminders())
		}
	})
	testButton := widget.NewButton("Test Notification", func() {
		if callbacks.OnTestNotification != nil {
			callbacks.OnTestNotification()
		}
	})
	prefsButton := widget.NewButton("Settings", func() {
		if callbacks.OnOpenPreferences != nil {
			callbacks.OnOpenPreferences()
		}
	})

	buttons := container.NewHBox(layout.NewSpacer(), dash.toggleButton, testButton, prefsButton, layout.NewSpacer())

	content := container.NewVBox(
		mascotImage,
		clockLabel,
		widget.NewSeparator(),
		nextEventLabel,
		countdownLabel,
		progressBar,
		counterLabel,
		buttons,
		statusLabel,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	dash.applyActive(active)
	return dash
}

// Show displays the dashboard.
func (dash *Window) Show() {
	dash.window.Show()
	dash.window.RequestFocus()
}

// Window exposes the underlying Fyne window for tray anchoring.
func (dash *Window) Window() fyne.Window {
	return dash.window
}

// SetUse24Hour switches the wall-clock display format.
func (dash *Window) SetUse24Hour(use24Hour bool) {
	dash.use24Hour = use24Hour
}

// SetTick updates the clock, countdown, and progress display. Safe to
// call from non-UI goroutines.
func (dash *Window) SetTick(now time.Time, kind model.EventKind, remaining time.Duration, progress float64) {
	fyne.Do(func() {
		dash.clockLabel.Text = schedule.FormatWallClock(now, dash.use24Hour)
		dash.clockLabel.Refresh()
		dash.nextEventLabel.SetText("Next " + kind.Label() + " in")
		dash.countdownLabel.Text = schedule.FormatCountdown(remaining)
		dash.countdownLabel.Refresh()
		dash.progressBar.SetValue(progress)
	})
}

// SetReminderCount updates the reminder-days counter.
func (dash *Window) SetReminderCount(count int) {
	fyne.Do(func() {
		dash.counterLabel.Text = "Reminder days: " + strconv.Itoa(count)
		dash.counterLabel.Refresh()
	})
}

// SetActive reflects whether reminders are running. Safe to call from
// non-UI goroutines.
func (dash *Window) SetActive(active bool) {
	fyne.Do(func() {
		dash.applyActive(active)
	})
}

// SetMascotFrame swaps the mascot sprite. Safe to call from non-UI
// goroutines.
func (dash *Window) SetMascotFrame(frame image.Image) {
	fyne.Do(func() {
		dash.mascotImage.Image = frame
		dash.mascotImage.Refresh()
	})
}

func (dash *Window) applyActive(active bool) {
	if active {
		dash.toggleButton.SetText("Stop Reminders")
		dash.statusLabel.SetText("Reminders are active")
		return
	}
	dash.toggleButton.SetText("Start Reminders")
	dash.statusLabel.SetText("Reminders stopped")
}


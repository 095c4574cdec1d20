package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnOpenDashboard    func()
	OnPreferences      func()
	OnToggleReminders  func()
	OnTestNotification func()
	OnQuit             func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	callbacks   Callbacks
	active      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start reminders", func() {
		if manager.callbacks.OnToggleReminders != nil {
			manager.callbacks.OnToggleReminders()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetActive updates the reminders toggle label.
func (manager *Manager) SetActive(active bool) {
	manager.active = active
	if active {
		manager.toggleItem.Label = "Stop reminders"
	} else {
		manager.toggleItem.Label = "Start reminders"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("ClockReminder",
		manager.statusItem,
		fyne.NewMenuItem("Open dashboard", func() {
			if manager.callbacks.OnOpenDashboard != nil {
				manager.callbacks.OnOpenDashboard()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Test notification", func() {
			if manager.callbacks.OnTestNotification != nil {
				manager.callbacks.OnTestNotification()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

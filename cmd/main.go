package main

import (
	"context"
	"image"
	"math/rand"
	"os"
	"sync"
	"time"

	"clockreminder/internal/core/model"
	"clockreminder/internal/core/schedule"
	"clockreminder/internal/notify"
	"clockreminder/internal/platform"
	"clockreminder/internal/storage"
	"clockreminder/internal/ui/animation"
	"clockreminder/internal/ui/dashboard"
	"clockreminder/internal/ui/mascot"
	"clockreminder/internal/ui/preferences"
	"clockreminder/internal/ui/tray"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
)

const appName = "ClockReminder"

func main() {
	log := logrus.WithField("component", "main")

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.WithError(err).Info("another instance is already running")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.WithError(err).Warn("settings unreadable, using defaults")
	}

	scheduleConfig, err := settings.ScheduleConfig()
	if err != nil {
		log.WithError(err).Warn("time zone unavailable, falling back to local")
	}

	fyneApp := app.NewWithID("com.clockreminder.app")
	fyneApp.SetIcon(mascot.AppIcon())

	watcher := schedule.New(scheduleConfig, schedule.Config{TickInterval: time.Second})
	notifier := notify.New(appName, platform.NotifyCommand)
	platformService := platform.NewService()

	var mu sync.Mutex
	active := settings.RemindersActive

	var dash *dashboard.Window
	var prefsWindow *preferences.Window
	var trayManager *tray.Manager

	persist := func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.WithError(err).Warn("save settings failed")
		}
	}

	applyAutostart := func(enabled bool) {
		execPath, err := os.Executable()
		if err != nil {
			log.WithError(err).Warn("resolve executable for autostart failed")
			return
		}
		if enabled {
			err = platformService.EnableAutostart(appName, execPath)
		} else {
			err = platformService.DisableAutostart(appName)
		}
		if err != nil {
			log.WithError(err).Warn("update autostart failed")
		}
	}

	toggleReminders := func() bool {
		mu.Lock()
		active = !active
		settings.RemindersActive = active
		snapshot := settings
		nowActive := active
		mu.Unlock()

		persist(snapshot)
		dash.SetActive(nowActive)
		if trayManager != nil {
			trayManager.SetActive(nowActive)
		}
		return nowActive
	}

	testNotification := func() {
		notifier.Send("Test Notification", "This is a test notification.")
	}

	dash = dashboard.New(fyneApp, settings.Use24Hour, active, dashboard.Callbacks{
		OnToggleReminders:  func() bool { return toggleReminders() },
		OnTestNotification: testNotification,
		OnOpenPreferences: func() {
			prefsWindow.Show()
		},
	})
	dash.SetReminderCount(settings.ReminderCount)

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		mu.Lock()
		autostartChanged := settings.LaunchAtLogin != updated.LaunchAtLogin
		updated.RemindersActive = active
		updated.ReminderCount = settings.ReminderCount
		settings = updated
		mu.Unlock()

		persist(updated)
		updatedConfig, err := updated.ScheduleConfig()
		if err != nil {
			log.WithError(err).Warn("time zone unavailable, falling back to local")
		}
		watcher.UpdateConfig(updatedConfig)
		dash.SetUse24Hour(updated.Use24Hour)
		if autostartChanged {
			applyAutostart(updated.LaunchAtLogin)
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(mascot.AppIcon())
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnOpenDashboard: func() {
				dash.Show()
			},
			OnPreferences: func() {
				prefsWindow.Show()
			},
			OnToggleReminders:  func() { toggleReminders() },
			OnTestNotification: testNotification,
			OnQuit: func() {
				watcher.Stop()
				fyneApp.Quit()
			},
		})
		trayManager.SetActive(active)
	} else {
		log.Info("system tray unsupported on this platform, window only")
	}

	engine := animation.New(animation.DefaultConfig(), mascot.WalkSpan, func(position int, rng *rand.Rand) image.Image {
		return mascot.Frame(position, rng)
	}, dash.SetMascotFrame)
	engine.StartWalk(context.Background())
	defer engine.Stop()

	events := watcher.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case schedule.EventProgress:
				dash.SetTick(event.At, event.Kind, event.Remaining, event.Progress)
				if trayManager != nil {
					trayManager.SetStatus("next " + event.Kind.Label() + " in " + schedule.FormatCountdown(event.Remaining))
				}
			case schedule.EventReminderDue:
				mu.Lock()
				fire := active
				if fire {
					settings.ReminderCount++
				}
				snapshot := settings
				mu.Unlock()

				if !fire {
					continue
				}
				notifier.Send(event.Kind.Label()+" Reminder", reminderMessage(event.Kind))
				dash.SetReminderCount(snapshot.ReminderCount)
				persist(snapshot)
			}
		}
	}()

	watcher.Start()
	defer watcher.Stop()

	dash.Show()
	fyneApp.Run()
}

func reminderMessage(kind model.EventKind) string {
	if kind == model.EventClockOut {
		return "It's time to clock out!"
	}
	return "It's time to clock in!"
}

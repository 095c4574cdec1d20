package schedule

import (
	"time"

	"clockreminder/internal/core/model"
)

// EventType defines the type of Watcher event.
type EventType string

const (
	EventProgress    EventType = "progress"
	EventReminderDue EventType = "reminder_due"
	EventStateChange EventType = "state_change"
)

// State represents the current Watcher mode.
type State string

const (
	StateWatching State = "watching"
	StatePaused   State = "paused"
	StateStopped  State = "stopped"
)

// Event represents a Watcher update for observers.
type Event struct {
	Type      EventType
	State     State
	Kind      model.EventKind
	Remaining time.Duration
	Progress  float64
	At        time.Time
}

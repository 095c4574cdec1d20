package model

import (
	"fmt"
	"time"
)

// EventKind identifies which reminder an event belongs to.
type EventKind string

const (
	EventClockIn  EventKind = "clock_in"
	EventClockOut EventKind = "clock_out"
)

// Label returns the user-facing name of the event.
func (kind EventKind) Label() string {
	if kind == EventClockOut {
		return "Clock Out"
	}
	return "Clock In"
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Valid reports whether the time of day is within a calendar day.
func (value TimeOfDay) Valid() bool {
	return value.Hour >= 0 && value.Hour <= 23 && value.Minute >= 0 && value.Minute <= 59
}

// At anchors the time of day on the given date in its location.
func (value TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), value.Hour, value.Minute, 0, 0, date.Location())
}

// Minutes returns the offset from midnight in minutes.
func (value TimeOfDay) Minutes() int {
	return value.Hour*60 + value.Minute
}

// String renders the time in 24-hour HH:MM form.
func (value TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", value.Hour, value.Minute)
}

// ScheduleConfig contains the event times the watcher monitors.
type ScheduleConfig struct {
	ClockIn  TimeOfDay
	ClockOut TimeOfDay
	Location *time.Location
}

package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clockreminder/internal/core/model"
)

// ErrInvalidClock indicates a clock time string that cannot be parsed.
var ErrInvalidClock = errors.New("invalid clock time")

// ParseClock parses "HH:MM" or "H:MM" in 24-hour form.
func ParseClock(text string) (model.TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return model.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}
	value := model.TimeOfDay{Hour: hour, Minute: minute}
	if !value.Valid() {
		return model.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}
	return value, nil
}

// ParseClock12 parses "hh:MM" with an AM/PM marker.
func ParseClock12(text, meridiem string) (model.TimeOfDay, error) {
	value, err := ParseClock(text)
	if err != nil {
		return model.TimeOfDay{}, err
	}
	if value.Hour < 1 || value.Hour > 12 {
		return model.TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidClock, text)
	}
	switch strings.ToUpper(strings.TrimSpace(meridiem)) {
	case "AM":
		if value.Hour == 12 {
			value.Hour = 0
		}
	case "PM":
		if value.Hour != 12 {
			value.Hour += 12
		}
	default:
		return model.TimeOfDay{}, fmt.Errorf("%w: meridiem %q", ErrInvalidClock, meridiem)
	}
	return value, nil
}

// FormatClock renders a time of day in the configured format.
func FormatClock(value model.TimeOfDay, use24Hour bool) string {
	if use24Hour {
		return value.String()
	}
	hour := value.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, value.Minute, Meridiem(value))
}

// Meridiem returns the AM/PM marker for a time of day.
func Meridiem(value model.TimeOfDay) string {
	if value.Hour >= 12 {
		return "PM"
	}
	return "AM"
}

// NextEvent returns the sooner future clock event. Before clock-in the
// next event is today's clock-in, before clock-out today's clock-out,
// otherwise tomorrow's clock-in.
func NextEvent(now time.Time, config model.ScheduleConfig) (model.EventKind, time.Time) {
	clockIn := config.ClockIn.At(now)
	clockOut := config.ClockOut.At(now)
	if now.Before(clockIn) {
		return model.EventClockIn, clockIn
	}
	if now.Before(clockOut) {
		return model.EventClockOut, clockOut
	}
	return model.EventClockIn, config.ClockIn.At(now.AddDate(0, 0, 1))
}

// PreviousEvent returns the most recent past clock event. It mirrors
// NextEvent and bounds the interval used for progress display.
func PreviousEvent(now time.Time, config model.ScheduleConfig) (model.EventKind, time.Time) {
	clockIn := config.ClockIn.At(now)
	clockOut := config.ClockOut.At(now)
	if now.Before(clockIn) {
		return model.EventClockOut, config.ClockOut.At(now.AddDate(0, 0, -1))
	}
	if now.Before(clockOut) {
		return model.EventClockIn, clockIn
	}
	return model.EventClockOut, clockOut
}

// Countdown returns the next event and the clamped time remaining.
func Countdown(now time.Time, config model.ScheduleConfig) (model.EventKind, time.Duration) {
	kind, at := NextEvent(now, config)
	remaining := at.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return kind, remaining
}

// IntervalProgress reports how far the current moment sits between the
// previous and next events, in [0, 1].
func IntervalProgress(now time.Time, config model.ScheduleConfig) float64 {
	_, next := NextEvent(now, config)
	_, previous := PreviousEvent(now, config)
	total := next.Sub(previous)
	if total <= 0 {
		return 1
	}
	progress := float64(now.Sub(previous)) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// ResolveLocation maps a configured zone name to a location. "Local",
// the empty string, and unknown zones all resolve to the local zone;
// unknown zones additionally report the load failure.
func ResolveLocation(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, "Local") {
		return time.Local, nil
	}
	location, err := time.LoadLocation(trimmed)
	if err != nil {
		return time.Local, fmt.Errorf("load time zone %q: %w", trimmed, err)
	}
	return location, nil
}

// FormatCountdown renders a duration as HH:MM:SS.
func FormatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatWallClock renders a timestamp in the configured format.
func FormatWallClock(now time.Time, use24Hour bool) string {
	if use24Hour {
		return now.Format("15:04:05")
	}
	return now.Format("03:04:05 PM")
}

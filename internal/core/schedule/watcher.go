package schedule

import (
	"sync"
	"time"

	"clockreminder/internal/core/model"
)

// Config contains runtime options for Watcher.
type Config struct {
	TickInterval time.Duration
}

// Watcher monitors the configured clock events and notifies observers
// on every tick and exactly once per event crossing.
type Watcher struct {
	mu       sync.Mutex
	config   model.ScheduleConfig
	options  Config
	state    State
	nextKind model.EventKind
	nextAt   time.Time
	events   []chan Event
	stopCh   chan struct{}
	running  bool
	paused   bool
}

// New creates a Watcher with the provided schedule.
func New(config model.ScheduleConfig, options Config) *Watcher {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Watcher{
		config:  config,
		options: options,
		state:   StateStopped,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (watcher *Watcher) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watcher.mu.Lock()
	watcher.events = append(watcher.events, ch)
	watcher.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (watcher *Watcher) Start() {
	watcher.mu.Lock()
	if watcher.running {
		watcher.mu.Unlock()
		return
	}
	watcher.running = true
	watcher.paused = false
	watcher.state = StateWatching
	watcher.nextAt = time.Time{}
	watcher.mu.Unlock()

	watcher.emit(Event{
		Type:  EventStateChange,
		State: StateWatching,
		At:    time.Now(),
	})

	go watcher.run()
}

// Stop terminates the ticking loop and closes observers.
func (watcher *Watcher) Stop() {
	watcher.mu.Lock()
	if !watcher.running {
		watcher.mu.Unlock()
		return
	}
	close(watcher.stopCh)
	watcher.running = false
	watcher.state = StateStopped
	events := watcher.events
	watcher.events = nil
	watcher.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Pause freezes reminder checking.
func (watcher *Watcher) Pause() {
	watcher.mu.Lock()
	if watcher.paused || !watcher.running {
		watcher.mu.Unlock()
		return
	}
	watcher.paused = true
	watcher.state = StatePaused
	watcher.mu.Unlock()

	watcher.emit(Event{
		Type:  EventStateChange,
		State: StatePaused,
		At:    time.Now(),
	})
}

// Resume unfreezes reminder checking. Events that passed while paused
// are skipped, not replayed.
func (watcher *Watcher) Resume() {
	watcher.mu.Lock()
	if !watcher.paused {
		watcher.mu.Unlock()
		return
	}
	watcher.paused = false
	watcher.state = StateWatching
	watcher.nextAt = time.Time{}
	watcher.mu.Unlock()

	watcher.emit(Event{
		Type:  EventStateChange,
		State: StateWatching,
		At:    time.Now(),
	})
}

// UpdateConfig replaces the schedule and re-targets the next event.
func (watcher *Watcher) UpdateConfig(config model.ScheduleConfig) {
	watcher.mu.Lock()
	watcher.config = config
	watcher.nextAt = time.Time{}
	watcher.mu.Unlock()
}

// Running reports whether the ticking loop is active.
func (watcher *Watcher) Running() bool {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	return watcher.running
}

func (watcher *Watcher) run() {
	ticker := time.NewTicker(watcher.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-watcher.stopCh:
			return
		case tickTime := <-ticker.C:
			watcher.tick(tickTime)
		}
	}
}

func (watcher *Watcher) tick(tickTime time.Time) {
	watcher.mu.Lock()
	if !watcher.running || watcher.paused {
		watcher.mu.Unlock()
		return
	}

	now := tickTime
	if watcher.config.Location != nil {
		now = now.In(watcher.config.Location)
	}

	if watcher.nextAt.IsZero() {
		watcher.nextKind, watcher.nextAt = NextEvent(now, watcher.config)
	}

	if !now.Before(watcher.nextAt) {
		firedKind := watcher.nextKind
		firedAt := watcher.nextAt
		watcher.nextKind, watcher.nextAt = NextEvent(now, watcher.config)
		watcher.emitLocked(Event{
			Type:  EventReminderDue,
			State: watcher.state,
			Kind:  firedKind,
			At:    firedAt,
		})
	}

	remaining := watcher.nextAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	watcher.emitLocked(Event{
		Type:      EventProgress,
		State:     watcher.state,
		Kind:      watcher.nextKind,
		Remaining: remaining,
		Progress:  IntervalProgress(now, watcher.config),
		At:        now,
	})
	watcher.mu.Unlock()
}

func (watcher *Watcher) emit(event Event) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.emitLocked(event)
}

func (watcher *Watcher) emitLocked(event Event) {
	events := append([]chan Event(nil), watcher.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

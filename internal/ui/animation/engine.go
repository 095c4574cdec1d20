package animation

import (
	"context"
	"image"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	StepInterval Range
	RestChance   float64
	RestDuration Range
}

// FrameFunc renders a frame for the given walk position.
type FrameFunc func(position int, rng *rand.Rand) image.Image

// Engine drives the walking mascot on its own goroutine.
type Engine struct {
	mu          sync.Mutex
	config      Config
	span        int
	render      FrameFunc
	updateFrame func(image.Image)
	cancel      context.CancelFunc
	rng         *rand.Rand
}

// New creates an animation engine. Span is the number of walk
// positions before the mascot turns around.
func New(config Config, span int, render FrameFunc, updateFrame func(image.Image)) *Engine {
	if span < 1 {
		span = 1
	}
	return &Engine{
		config:      config,
		span:        span,
		render:      render,
		updateFrame: updateFrame,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartWalk starts the walk loop, cancelling any previous run. The
// mascot paces back and forth, occasionally resting at a turn.
func (engine *Engine) StartWalk(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		position := 0
		direction := 1
		for {
			engine.updateFrame(engine.render(position, engine.rng))
			if !sleepWithContext(runCtx, engine.config.StepInterval.Random(engine.rng)) {
				return
			}
			position += direction
			if position >= engine.span || position <= 0 {
				direction = -direction
				if engine.rng.Float64() <= engine.config.RestChance {
					if !sleepWithContext(runCtx, engine.config.RestDuration.Random(engine.rng)) {
						return
					}
				}
			}
		}
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

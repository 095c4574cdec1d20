package animation

import (
	"context"
	"image"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Range{Min: time.Second, Max: time.Second}
	assert.Equal(t, time.Second, fixed.Random(rng))

	// Inverted ranges collapse to Min.
	inverted := Range{Min: 2 * time.Second, Max: time.Second}
	assert.Equal(t, 2*time.Second, inverted.Random(rng))

	spread := Range{Min: 100 * time.Millisecond, Max: 200 * time.Millisecond}
	for i := 0; i < 100; i++ {
		value := spread.Random(rng)
		require.GreaterOrEqual(t, value, spread.Min)
		require.Less(t, value, spread.Max)
	}
}

func TestEngineWalkEmitsFramesAndStops(t *testing.T) {
	var frames atomic.Int64
	render := func(position int, rng *rand.Rand) image.Image {
		require.GreaterOrEqual(t, position, 0)
		require.LessOrEqual(t, position, 3)
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	config := Config{
		StepInterval: Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
	}
	engine := New(config, 3, render, func(image.Image) {
		frames.Add(1)
	})

	engine.StartWalk(context.Background())
	time.Sleep(50 * time.Millisecond)
	engine.Stop()
	time.Sleep(10 * time.Millisecond)

	emitted := frames.Load()
	assert.Greater(t, emitted, int64(1))

	// No frames after Stop.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, emitted, frames.Load())
}

func TestEngineRestartCancelsPreviousRun(t *testing.T) {
	var frames atomic.Int64
	render := func(position int, rng *rand.Rand) image.Image {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	config := Config{
		StepInterval: Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
	}
	engine := New(config, 3, render, func(image.Image) {
		frames.Add(1)
	})

	engine.StartWalk(context.Background())
	engine.StartWalk(context.Background())
	time.Sleep(20 * time.Millisecond)
	engine.Stop()
	time.Sleep(20 * time.Millisecond)

	// A restart replaces the loop rather than stacking a second one; the
	// final Stop leaves nothing running.
	final := frames.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, final, frames.Load())
}

package animation

import "time"

// DefaultConfig returns walk timings close to the 10 fps pacing of the
// original mascot.
func DefaultConfig() Config {
	return Config{
		StepInterval: Range{
			Min: 90 * time.Millisecond,
			Max: 140 * time.Millisecond,
		},
		RestChance: 0.15,
		RestDuration: Range{
			Min: 400 * time.Millisecond,
			Max: 900 * time.Millisecond,
		},
	}
}

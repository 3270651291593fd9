package game

import (
	"io"

	"github.com/pkg/errors"
)

// ThreadedThreshold is the smallest dirty area, in cells, worth splitting across workers
const ThreadedThreshold = 128

// Config describes a game to Initialize
type Config struct {
	Width  int
	Height int

	// Logging writes every generation to Output after it is stepped
	Logging bool
	Output  io.Writer

	// StepTarget is the generation count Run stops at
	StepTarget int

	StartingState Preset

	// Seed drives Randomize; zero seeds from the clock
	Seed int64

	// Threaded spreads rule evaluation across CPUs once the dirty area reaches ThreadedThreshold
	Threaded bool
}

// Validate checks the config for values Initialize cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.StepTarget < 0 {
		return errors.Errorf("[Validate] step target must not be negative, got %d", c.StepTarget)
	}
	if _, ok := seeders[c.StartingState]; !ok {
		return errors.Errorf("[Validate] unknown starting state: %d", int(c.StartingState))
	}
	return nil
}

package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/planar/vmath"
)

// Configuration errors
var (
	ErrTicksPerSecond   = errors.New("engine: ticks per second must be positive")
	ErrIterations       = errors.New("engine: iterations must be positive")
	ErrSpeed            = errors.New("engine: speed must be positive")
	ErrMaxStepsPerFrame = errors.New("engine: max steps per frame must be positive")
)

// Config carries the simulation constants explicitly instead of process
// globals, so multiple independent simulations can coexist and tests stay
// deterministic.
type Config struct {
	// TicksPerSecond is the base physics rate
	TicksPerSecond int `yaml:"ticks_per_second"`
	// Iterations subdivides each tick for force generation, shrinking the
	// integration interval by the same factor
	Iterations int `yaml:"iterations"`
	// Speed scales simulated time relative to wall time
	Speed vmath.Scalar `yaml:"speed"`
	// MaxStepsPerFrame caps catch-up steps after a frame stall; accumulated
	// time beyond the cap is dropped so a long stall cannot snowball into an
	// unrecoverable backlog
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"`
}

// DefaultConfig returns the reference rates: 60 ticks, single iteration,
// real-time speed, 8 catch-up steps per frame
func DefaultConfig() Config {
	return Config{
		TicksPerSecond:   60,
		Iterations:       1,
		Speed:            1,
		MaxStepsPerFrame: 8,
	}
}

// Validate fails fast on non-physical configuration
func (c Config) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: got %d", ErrTicksPerSecond, c.TicksPerSecond)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, c.Iterations)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: got %v", ErrSpeed, c.Speed)
	}
	if c.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("%w: got %d", ErrMaxStepsPerFrame, c.MaxStepsPerFrame)
	}
	return nil
}

// TickInterval is the fixed step size in simulated seconds:
// 1 / (ticks × iterations) × speed
func (c Config) TickInterval() vmath.Scalar {
	return 1 / (vmath.Scalar(c.TicksPerSecond) * vmath.Scalar(c.Iterations)) * c.Speed
}

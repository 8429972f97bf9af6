package sim

import (
	"time"

	"github.com/san-kum/laxsim/internal/lax"
)

// Sink receives one frame per time step, in time order. WriteFrame must not
// retain or modify g.
type Sink interface {
	WriteFrame(step int, g lax.Grid) error
	Close() error
}

// Observer is notified with every emitted frame.
type Observer interface {
	OnFrame(step int, g lax.Grid)
}

type Metric interface {
	Name() string
	Observe(step int, g lax.Grid)
	Value() float64
	Reset()
}

type Config struct {
	Steps int
	// CheckFinite stops the run with lax.ErrNonFinite once the field
	// contains NaN or Inf. Off by default.
	CheckFinite bool
}

type Result struct {
	Frames  int
	Final   lax.Grid
	Metrics map[string]float64
	Elapsed time.Duration
}

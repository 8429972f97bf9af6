package lax

import (
	"errors"
	"fmt"
)

// Domain errors for grid construction and stepping.
var (
	// ErrGridTooSmall indicates fewer than MinGridSize points, where the
	// boundary formulas would reference the same cell twice.
	ErrGridTooSmall = errors.New("lax: grid must have at least 3 points")

	// ErrNegativeSteps indicates a negative iteration count.
	ErrNegativeSteps = errors.New("lax: step count must not be negative")

	// ErrNonFinite indicates the field contains NaN or Inf.
	ErrNonFinite = errors.New("lax: field is not finite (NaN or Inf detected)")

	// ErrDimensionMismatch indicates two grids of different length.
	ErrDimensionMismatch = errors.New("lax: grid dimension mismatch")
)

// StepError wraps an error with the time step it occurred at.
type StepError struct {
	Step    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

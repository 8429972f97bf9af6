package lax

// Stepper advances a Grid with the Lax scheme on a ring. It owns two
// buffers: current holds the field at the present step and next is scratch
// written only during Advance.
type Stepper struct {
	cur, next Grid
	k         float64
	steps     int
}

// NewStepper copies initial into a freshly allocated current buffer.
// k is not range checked.
func NewStepper(initial Grid, k float64) (*Stepper, error) {
	if len(initial) < MinGridSize {
		return nil, ErrGridTooSmall
	}
	return &Stepper{
		cur:  initial.Clone(),
		next: NewGrid(len(initial)),
		k:    k,
	}, nil
}

// Current returns the field at the present step. Callers must not modify it
// and must not retain it across Advance.
func (s *Stepper) Current() Grid { return s.cur }

func (s *Stepper) Courant() float64 { return s.k }
func (s *Stepper) Size() int        { return len(s.cur) }

// Steps returns how many times Advance has completed.
func (s *Stepper) Steps() int { return s.steps }

// Advance computes every entry of next from current, then swaps the
// buffers so the old current becomes scratch for the following pass.
func (s *Stepper) Advance() {
	Step(s.next, s.cur, s.k)
	s.cur, s.next = s.next, s.cur
	s.steps++
}

// Reset replaces the current field, keeping the buffers.
func (s *Stepper) Reset(g Grid) error {
	if len(g) != len(s.cur) {
		return ErrDimensionMismatch
	}
	copy(s.cur, g)
	s.steps = 0
	return nil
}

// Step performs one Lax pass from src into dst. dst and src must have the
// same length (>= MinGridSize) and must not share storage.
func Step(dst, src Grid, k float64) {
	n := len(src)
	dst[0] = update(src[n-1], src[1], k)
	for j := 1; j < n-1; j++ {
		dst[j] = update(src[j-1], src[j+1], k)
	}
	dst[n-1] = update(src[n-2], src[0], k)
}

// update is the Lax average of the two neighbours minus the centred flux.
func update(left, right, k float64) float64 {
	return 0.5*(left+right) - k*(right-left)
}

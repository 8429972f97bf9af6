package frame

import "github.com/san-kum/laxsim/internal/lax"

// Record is one (index, value) pair of a frame.
type Record struct {
	Index int
	Value float64
}

// Frame is the grid at one time step.
type Frame struct {
	Step   int
	Values lax.Grid
}

func (f Frame) Records() []Record {
	recs := make([]Record, len(f.Values))
	for i, v := range f.Values {
		recs[i] = Record{Index: i, Value: v}
	}
	return recs
}

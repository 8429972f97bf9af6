// Package lax implements the explicit Lax (Lax-Friedrichs) scheme for a
// scalar field on a periodic one-dimensional grid.
//
// The package provides the numerical core of a run:
//
//   - [Grid]: the field sampled at N uniformly spaced points on a ring
//   - [Gaussian]: closed-form initial profile evaluated per grid index
//   - [Stepper]: double-buffered update that advances a Grid one step
//
// # Example
//
//	g := lax.NewGrid(101)
//	lax.Gaussian{Amplitude: 10, Center: 50, Width: 10}.Fill(g)
//	st, _ := lax.NewStepper(g, 0.49)
//	for t := 0; t < 100; t++ {
//	    emit(st.Current())
//	    st.Advance()
//	}
//
// # Stability
//
// The Courant parameter is expected to satisfy 0 < k <= 1. The stepper does
// not check this; outside that range the profile grows without bound and
// eventually turns into NaN/Inf. Use [Grid.IsFinite] to detect it.
//
// # Thread Safety
//
// A Stepper owns both of its buffers and is NOT safe for concurrent use.
// The Grid returned by [Stepper.Current] is only valid until the next call
// to [Stepper.Advance].
package lax

package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT computes the discrete Fourier transform of a real signal of any
// length. The ring is transformed as is, without padding, so bin m is
// exactly the wavenumber m of the periodic grid.
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	return fft.FFTReal(data)
}

// PowerSpectrum returns |X_m| for m in [0, n/2]. Higher bins mirror these
// for real input.
func PowerSpectrum(data []float64) []float64 {
	x := FFT(data)
	if x == nil {
		return nil
	}
	ps := make([]float64, len(x)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(x[i])
	}
	return ps
}

// DominantMode returns the index of the largest entry of ps, skipping the
// constant mode at index 0. It returns 0 when ps has no other entries.
func DominantMode(ps []float64) int {
	best := 0
	for i := 1; i < len(ps); i++ {
		if best == 0 || ps[i] > ps[best] {
			best = i
		}
	}
	return best
}

// Energy sums the squared magnitudes, excluding the constant mode.
func Energy(ps []float64) float64 {
	e := 0.0
	for i := 1; i < len(ps); i++ {
		e += ps[i] * ps[i]
	}
	return e
}

package lax

import "math"

// Gaussian is the bump amplitude * exp(-(j-center)^2 / (2*width^2)).
type Gaussian struct {
	Amplitude float64
	Center    float64
	Width     float64
}

// At evaluates the profile at grid index j.
func (p Gaussian) At(j int) float64 {
	d := float64(j) - p.Center
	return p.Amplitude * math.Exp(-d*d/(2*p.Width*p.Width))
}

// Fill writes the profile into g in index order.
func (p Gaussian) Fill(g Grid) {
	for j := range g {
		g[j] = p.At(j)
	}
}

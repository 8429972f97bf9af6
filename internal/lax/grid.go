package lax

import "math"

// MinGridSize is the smallest ring on which every point has two distinct
// neighbours.
const MinGridSize = 3

// Grid holds one value per ring position; index N-1 is adjacent to index 0.
type Grid []float64

func NewGrid(n int) Grid {
	return make(Grid, n)
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

// IsFinite reports whether no entry is NaN or Inf.
func (g Grid) IsFinite() bool {
	for _, v := range g {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (g Grid) MaxAbs() float64 {
	m := 0.0
	for _, v := range g {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func (g Grid) Sum() float64 {
	sum := 0.0
	for _, v := range g {
		sum += v
	}
	return sum
}

// ArgMax returns the index of the largest value, or -1 for an empty grid.
func (g Grid) ArgMax() int {
	if len(g) == 0 {
		return -1
	}
	idx := 0
	for i, v := range g {
		if v > g[idx] {
			idx = i
		}
	}
	return idx
}

package metrics

import (
	"math"

	"github.com/san-kum/laxsim/internal/lax"
)

// MaxAbs tracks the largest |u| seen over all observed frames.
type MaxAbs struct {
	name string
	max  float64
}

func NewMaxAbs() *MaxAbs {
	return &MaxAbs{name: "max_abs"}
}

func (m *MaxAbs) Name() string { return m.name }

func (m *MaxAbs) Observe(_ int, g lax.Grid) {
	m.max = math.Max(m.max, g.MaxAbs())
}

func (m *MaxAbs) Value() float64 { return m.max }
func (m *MaxAbs) Reset()         { m.max = 0 }

// Peak reports the index of the maximum in the most recent frame. On a ring
// it follows the advected bump.
type Peak struct {
	name string
	idx  int
}

func NewPeak() *Peak {
	return &Peak{name: "peak_index", idx: -1}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(_ int, g lax.Grid) {
	p.idx = g.ArgMax()
}

func (p *Peak) Value() float64 { return float64(p.idx) }
func (p *Peak) Reset()         { p.idx = -1 }

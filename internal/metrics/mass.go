package metrics

import (
	"math"

	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/sim"
)

// MassDrift reports the largest relative deviation of sum(u) from its value
// in the first observed frame. The periodic Lax update conserves the sum,
// so anything above rounding noise points at a broken update.
type MassDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{name: "mass_drift"}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(_ int, g lax.Grid) {
	sum := g.Sum()
	if m.samples == 0 {
		m.initial = sum
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(sum-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// Defaults returns the metrics attached to every CLI run.
func Defaults() []sim.Metric {
	return []sim.Metric{NewMaxAbs(), NewMassDrift(), NewPeak()}
}

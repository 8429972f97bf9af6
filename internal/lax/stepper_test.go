package lax_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/laxsim/internal/lax"
)

var reference = lax.Gaussian{Amplitude: 10, Center: 50, Width: 10}

// oracle materialises the whole next grid from an untouched copy of src.
func oracle(src lax.Grid, k float64) lax.Grid {
	n := len(src)
	frozen := src.Clone()
	out := make(lax.Grid, n)
	for j := 0; j < n; j++ {
		l, r := frozen[(j-1+n)%n], frozen[(j+1)%n]
		out[j] = 0.5*(l+r) - k*(r-l)
	}
	return out
}

var _ = Describe("Gaussian", func() {
	It("matches the closed form at every index", func() {
		g := lax.NewGrid(101)
		reference.Fill(g)
		for j := range g {
			want := 10 * math.Exp(-math.Pow(float64(j)-50, 2)/(2*10*10))
			Expect(g[j]).To(BeNumerically("~", want, 1e-12))
		}
		Expect(g.ArgMax()).To(Equal(50))
		Expect(g[50]).To(Equal(10.0))
	})

	It("is reproducible", func() {
		a, b := lax.NewGrid(101), lax.NewGrid(101)
		reference.Fill(a)
		reference.Fill(b)
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Stepper", func() {
	It("rejects grids smaller than three points", func() {
		_, err := lax.NewStepper(lax.Grid{1, 2}, 0.5)
		Expect(err).To(MatchError(lax.ErrGridTooSmall))
	})

	It("does not alias the caller's grid", func() {
		g := lax.Grid{1, 2, 3}
		st, err := lax.NewStepper(g, 0.5)
		Expect(err).NotTo(HaveOccurred())
		st.Advance()
		Expect(g).To(Equal(lax.Grid{1, 2, 3}))
	})

	It("reproduces the golden five point scenario", func() {
		st, err := lax.NewStepper(lax.Grid{0, 1, 2, 3, 4}, 0.5)
		Expect(err).NotTo(HaveOccurred())
		st.Advance()

		want := []float64{
			0.5*(4+1) - 0.5*(1-4),
			0.5*(0+2) - 0.5*(2-0),
			0.5*(1+3) - 0.5*(3-1),
			0.5*(2+4) - 0.5*(4-2),
			0.5*(3+0) - 0.5*(0-3),
		}
		Expect(want).To(Equal([]float64{4, 0, 1, 2, 3}))
		for j, v := range st.Current() {
			Expect(v).To(BeNumerically("~", want[j], 1e-12))
		}
		Expect(st.Steps()).To(Equal(1))
	})

	It("wraps boundary reads onto the opposite end of the ring", func() {
		// powers of two make every pairwise sum unique
		n := 8
		src := make(lax.Grid, n)
		for j := range src {
			src[j] = math.Ldexp(1, j)
		}
		k := 0.25
		dst := lax.NewGrid(n)
		lax.Step(dst, src, k)

		Expect(dst[0]).To(Equal(0.5*(src[n-1]+src[1]) - k*(src[1]-src[n-1])))
		Expect(dst[n-1]).To(Equal(0.5*(src[n-2]+src[0]) - k*(src[0]-src[n-2])))

		// with k = 0 the average identifies the neighbours directly
		lax.Step(dst, src, 0)
		Expect(dst[0]).To(Equal((128.0 + 2.0) / 2))
		Expect(dst[n-1]).To(Equal((64.0 + 1.0) / 2))
	})

	It("computes every entry from the pre-update field", func() {
		n := 10
		src := make(lax.Grid, n)
		for j := range src {
			if j%2 == 0 {
				src[j] = 1
			} else {
				src[j] = 7
			}
		}
		k := 0.3
		want := oracle(src, k)

		st, err := lax.NewStepper(src, k)
		Expect(err).NotTo(HaveOccurred())
		st.Advance()
		Expect(st.Current()).To(Equal(want))

		// an in-place sweep reads already updated neighbours and diverges
		inPlace := src.Clone()
		lax.Step(inPlace, inPlace, k)
		Expect(inPlace).NotTo(Equal(want))
	})

	It("matches the oracle over many swaps", func() {
		g := lax.NewGrid(101)
		reference.Fill(g)
		st, err := lax.NewStepper(g, 0.49)
		Expect(err).NotTo(HaveOccurred())

		want := g.Clone()
		for i := 0; i < 25; i++ {
			want = oracle(want, 0.49)
			st.Advance()
		}
		Expect(st.Current()).To(Equal(want))
	})

	It("stays bounded and conserves mass for a stable k", func() {
		g := lax.NewGrid(101)
		reference.Fill(g)
		initialMax, initialSum := g.MaxAbs(), g.Sum()

		st, err := lax.NewStepper(g, 0.49)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 100; i++ {
			st.Advance()
		}

		Expect(st.Current().IsFinite()).To(BeTrue())
		Expect(st.Current().MaxAbs()).To(BeNumerically("<=", initialMax*(1+1e-9)))
		Expect(st.Current().Sum()).To(BeNumerically("~", initialSum, 1e-9*initialSum))
	})

	It("resets the field without reallocating", func() {
		st, err := lax.NewStepper(lax.Grid{0, 1, 2, 3, 4}, 0.5)
		Expect(err).NotTo(HaveOccurred())
		st.Advance()
		Expect(st.Reset(lax.Grid{1, 1, 1, 1, 1})).To(Succeed())
		Expect(st.Steps()).To(Equal(0))
		Expect(st.Current()).To(Equal(lax.Grid{1, 1, 1, 1, 1}))
		Expect(st.Reset(lax.Grid{1})).To(MatchError(lax.ErrDimensionMismatch))
	})
})

var _ = Describe("StepError", func() {
	It("unwraps to the cause", func() {
		var err error = &lax.StepError{Step: 4, Wrapped: lax.ErrNonFinite}
		Expect(err).To(MatchError(lax.ErrNonFinite))
		Expect(err.Error()).To(Equal("step 4: lax: field is not finite (NaN or Inf detected)"))
	})
})

package gauss

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSolveClampsSigma(t *testing.T) {
	floor := Solve(0.5)

	for _, sigma := range []float64{0.4999, 0.1, 0, -1, -100} {
		if got := Solve(sigma); got != floor {
			t.Errorf("Solve(%v) = %+v, want Solve(0.5) = %+v", sigma, got, floor)
		}
	}
}

func TestSolveDeterministic(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 1.5, 3, 10, 25} {
		if Solve(sigma) != Solve(sigma) {
			t.Errorf("Solve(%v) not deterministic", sigma)
		}
	}
}

func TestSolveUnitGain(t *testing.T) {
	// The boundary weights are the steady-state responses of the two
	// sweeps; their sum is the DC gain of the combined filter and must
	// be 1 so constant inputs pass through unchanged.
	for _, sigma := range []float64{0.5, 0.8, 1.5, 3, 10, 50} {
		c := Solve(sigma)

		if !almostEqual(c.CPrev+c.CNext, 1, eps) {
			t.Errorf("sigma=%v: CPrev+CNext = %.15f, want 1", sigma, c.CPrev+c.CNext)
		}

		feed := c.A0 + c.A1 + c.A2 + c.A3
		back := 1 + c.B1 + c.B2

		if !almostEqual(feed, back, eps) {
			t.Errorf("sigma=%v: sum(A) = %.15f, 1+B1+B2 = %.15f, want equal", sigma, feed, back)
		}
	}
}

func TestSolveCoefficientShape(t *testing.T) {
	for _, sigma := range []float64{0.5, 1.5, 4} {
		c := Solve(sigma)

		if c.A0 <= 0 || c.A2 <= 0 {
			t.Errorf("sigma=%v: expected positive A0, A2, got %+v", sigma, c)
		}

		if c.B1 >= 0 || c.B2 <= 0 {
			t.Errorf("sigma=%v: expected B1 < 0 < B2, got %+v", sigma, c)
		}

		if c.CPrev <= 0 || c.CPrev >= 1 || c.CNext <= 0 || c.CNext >= 1 {
			t.Errorf("sigma=%v: boundary weights outside (0,1): %+v", sigma, c)
		}

		// The feedback of the collapsed recurrence must be a contraction
		// or the sweeps would diverge.
		if b1b2 := c.B1 + c.B2; math.Abs(b1b2) >= 1 {
			t.Errorf("sigma=%v: |B1+B2| = %v, want < 1", sigma, math.Abs(b1b2))
		}
	}
}

func TestSolveWidensWithSigma(t *testing.T) {
	// Larger sigma means slower decay: the magnitude of the feedback
	// term grows toward 1 as sigma grows.
	prev := -1.0

	for _, sigma := range []float64{0.5, 1, 2, 4, 8, 16} {
		c := Solve(sigma)

		decay := math.Abs(c.B1 + c.B2)
		if decay <= prev {
			t.Errorf("sigma=%v: decay %v not larger than %v at previous sigma", sigma, decay, prev)
		}

		prev = decay
	}
}

func TestCombined(t *testing.T) {
	c := Solve(1.5)
	a0a1, a2a3, b1b2 := c.combined()

	if a0a1 != c.A0+c.A1 || a2a3 != c.A2+c.A3 || b1b2 != c.B1+c.B2 {
		t.Fatalf("combined() = %v, %v, %v, want %v, %v, %v",
			a0a1, a2a3, b1b2, c.A0+c.A1, c.A2+c.A3, c.B1+c.B2)
	}
}

package gauss

import "math"

// minSigma is the floor applied to the blur strength before coefficient
// derivation; below it the recursion becomes numerically useless.
const minSigma = 0.5

// Coefficients holds the recursive-filter coefficients derived from sigma.
//
// The filter runs as two first-order sweeps over each line:
//
//	forward:  s = x*(A0+A1) - s*(B1+B2)
//	backward: s = x*(A2+A3) - s*(B1+B2)
//
// and the per-position sum of both sweeps is the filtered value. CPrev and
// CNext are the steady-state responses of the two sweeps to a constant
// input; they seed the running state at line edges, which amounts to
// extending the line with a constant copy of its edge sample.
type Coefficients struct {
	A0, A1, A2, A3 float64 // feedforward
	B1, B2         float64 // feedback
	CPrev, CNext   float64 // boundary seed weights
}

// Solve derives the filter coefficients for the given blur strength.
// Sigma is clamped to a floor of 0.5; the function is pure and total.
//
// The alpha term uses a fixed exp(0.726^2) numerator, carried over
// unchanged from the reference C kernel for output parity. Classical
// Deriche-style derivations relate alpha to sigma differently; treat this
// variant as an approximation specific to that kernel rather than a
// canonical reference.
func Solve(sigma float64) Coefficients {
	if sigma < minSigma {
		sigma = minSigma
	}

	alpha := math.Exp(0.726*0.726) / sigma
	lambda := math.Exp(-alpha)
	b2 := math.Exp(-2 * alpha)
	k := (1 - lambda) * (1 - lambda) / (1 + 2*alpha*lambda - b2)

	c := Coefficients{
		A0: k,
		A1: k * (alpha - 1) * lambda,
		A2: k * (alpha + 1) * lambda,
		A3: -k * b2,
		B1: -2 * lambda,
		B2: b2,
	}

	// den equals (1-lambda)^2, so CPrev+CNext is exactly 1: the filter has
	// unit steady-state gain and constant inputs pass through unchanged.
	den := 1 + c.B1 + c.B2
	c.CPrev = (c.A0 + c.A1) / den
	c.CNext = (c.A2 + c.A3) / den

	return c
}

// combined returns the per-sweep terms a0+a1, a2+a3, and b1+b2 used by the
// line filter.
func (c Coefficients) combined() (a0a1, a2a3, b1b2 float64) {
	return c.A0 + c.A1, c.A2 + c.A3, c.B1 + c.B2
}

package gauss

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrBadResponseLength is returned for non-positive analysis lengths.
var ErrBadResponseLength = errors.New("gauss: response length must be positive")

// ImpulseResponse returns n samples of the effective 1D smoothing kernel:
// both sweeps run in floating point over a unit impulse at n/2, with no
// byte narrowing. The result decays geometrically on both sides of the
// center and sums to approximately 1 (the filter has unit DC gain).
//
// The two sides are not mirror images: samples after the center carry the
// forward-sweep weight A0+A1, samples before it the backward-sweep weight
// A2+A3. The collapsed first-order recurrence inherits this directional
// bias from the reference kernel; it shrinks as sigma grows.
//
// This is the kernel one line of [Blur] convolves with, so it is the place
// to inspect how a given sigma actually spreads.
func (c Coefficients) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	a0a1, a2a3, b1b2 := c.combined()

	in := make([]float64, n)
	in[n/2] = 1

	out := make([]float64, n)

	state := in[0] * c.CPrev
	for i, x := range in {
		state = x*a0a1 - state*b1b2
		out[i] = state
	}

	state = in[n-1] * c.CNext
	for i := n - 1; i >= 0; i-- {
		state = in[i]*a2a3 - state*b1b2
		out[i] += state
	}

	return out
}

// MagnitudeResponse returns the one-sided magnitude spectrum |H[k]| of the
// effective kernel, computed with an FFT of size nextPowerOf2(n). Bin k
// corresponds to the normalized frequency k/size cycles per pixel; the
// returned slice has size/2+1 bins, DC through Nyquist.
func (c Coefficients) MagnitudeResponse(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadResponseLength
	}

	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("gauss: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range c.ImpulseResponse(size) {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("gauss: failed to compute kernel FFT: %w", err)
	}

	re := make([]float64, size)
	im := make([]float64, size)

	for i, v := range out {
		re[i] = real(v)
		im[i] = imag(v)
	}

	mag := make([]float64, size)
	vecmath.Magnitude(mag, re, im)

	return mag[:size/2+1], nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

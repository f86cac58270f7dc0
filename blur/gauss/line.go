package gauss

// maxChannels bounds the per-pixel accumulator of the line filter.
const maxChannels = 4

// view addresses one 1D line of multi-channel pixels inside a flat byte
// buffer: pixel i occupies pix[i*step : i*step+channels]. A row view has
// step == channels; a column view has step == one full row of bytes.
type view struct {
	pix  []byte
	step int
}

// filterLine runs the forward and backward recursive sweeps over one line
// of n pixels with ch interleaved channels, reading from src and writing
// the narrowed result through dst. acc holds the forward partials and must
// have at least n*ch elements.
//
// One generic loop covers all supported channel counts; the fixed-size
// state array keeps it allocation-free.
func filterLine(dst, src view, acc []float64, n, ch int, a0a1, a2a3, b1b2, cprev, cnext float64) {
	var state [maxChannels]float64

	// Forward sweep, seeded with the steady-state response to a constant
	// extension of the first pixel.
	for c := range ch {
		state[c] = float64(src.pix[c]) * cprev
	}

	for i := range n {
		p := src.pix[i*src.step:]
		o := acc[i*ch:]

		for c := range ch {
			s := float64(p[c])*a0a1 - state[c]*b1b2
			state[c] = s
			o[c] = s
		}
	}

	// Backward sweep, seeded from the last pixel. Its output is added to
	// the forward partial; the sum is the final filtered value.
	last := src.pix[(n-1)*src.step:]
	for c := range ch {
		state[c] = float64(last[c]) * cnext
	}

	for i := n - 1; i >= 0; i-- {
		p := src.pix[i*src.step:]
		o := acc[i*ch:]
		d := dst.pix[i*dst.step:]

		for c := range ch {
			s := float64(p[c])*a2a3 - state[c]*b1b2
			state[c] = s
			d[c] = narrow(o[c] + s)
		}
	}
}

// narrow converts a filtered sample to an 8-bit level, clamping to the
// valid range and rounding to nearest. The reference C kernel truncated
// toward zero twice (once per sweep); rounding the combined value once
// keeps constant lines and single-pixel lines bit-stable across both
// passes.
func narrow(v float64) byte {
	if v <= 0 {
		return 0
	}

	if v >= 255 {
		return 255
	}

	return byte(v + 0.5)
}

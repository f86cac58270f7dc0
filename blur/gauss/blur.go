package gauss

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-blur/blur/pixel"
)

// Errors returned by Blur. The legacy kernel failed silently for all of
// these; every rejection here leaves dst untouched.
var (
	ErrBadDimensions       = errors.New("gauss: width and height must be positive")
	ErrBadStride           = errors.New("gauss: stride must be a positive multiple of width")
	ErrUnsupportedChannels = errors.New("gauss: channel count must be 1, 3, or 4")
	ErrShortInput          = errors.New("gauss: input shorter than height*stride")
	ErrShortOutput         = errors.New("gauss: output shorter than height*stride")
	ErrAliasedBuffers      = errors.New("gauss: input and output must not overlap")
	ErrDimensionMismatch   = errors.New("gauss: source and destination dimensions differ")
)

// Scratch reuse across calls: the transposed intermediate lives in a byte
// pool, the per-line float partials in their own sync.Pool.
var scratchPool = pixel.NewPool()

type accBuf struct {
	data []float64
}

var accPool = sync.Pool{
	New: func() any { return &accBuf{} },
}

func getAcc(n int) *accBuf {
	buf := accPool.Get().(*accBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}

	return buf
}

func putAcc(buf *accBuf) {
	accPool.Put(buf)
}

// Blur applies an approximate Gaussian blur of strength sigma to an
// interleaved 8-bit pixel buffer.
//
// src holds height rows of width pixels with stride bytes per row; the
// channel count is derived as stride/width and must be 1, 3, or 4. dst
// receives the result in the same layout and must not overlap src. Both
// slices are caller-owned and must hold at least height*stride bytes.
// Sigma is clamped to a floor of 0.5.
//
// Cost per pixel is independent of sigma. On any returned error dst is
// untouched.
func Blur(dst, src []byte, width, height, stride int, sigma float64) error {
	ch, err := validate(dst, src, width, height, stride)
	if err != nil {
		return err
	}

	c := Solve(sigma)
	a0a1, a2a3, b1b2 := c.combined()

	tmp := scratchPool.Get(height * stride)
	defer scratchPool.Put(tmp)

	acc := getAcc(max(width, height) * ch)
	defer putAcc(acc)

	// Horizontal pass: row y of src becomes column y of the transposed
	// intermediate, so the vertical pass reads contiguous lines.
	interm := tmp.Bytes()
	colStep := height * ch

	for y := range height {
		srcv := view{pix: src[y*stride:], step: ch}
		dstv := view{pix: interm[y*ch:], step: colStep}
		filterLine(dstv, srcv, acc.data, width, ch, a0a1, a2a3, b1b2, c.CPrev, c.CNext)
	}

	// Vertical pass: contiguous line x of the intermediate becomes column x
	// of dst, back in row-major order. It must not start before the
	// horizontal pass has written every row, since each line spans them all.
	for x := range width {
		srcv := view{pix: interm[x*colStep:], step: ch}
		dstv := view{pix: dst[x*ch:], step: stride}
		filterLine(dstv, srcv, acc.data, height, ch, a0a1, a2a3, b1b2, c.CPrev, c.CNext)
	}

	return nil
}

// BlurBuffer blurs src into dst. Both buffers must validate and agree on
// width, height, and stride.
func BlurBuffer(dst, src *pixel.Buffer, sigma float64) error {
	if err := src.Validate(); err != nil {
		return err
	}

	if err := dst.Validate(); err != nil {
		return err
	}

	if dst.Width != src.Width || dst.Height != src.Height || dst.Stride != src.Stride {
		return ErrDimensionMismatch
	}

	return Blur(dst.Pix, src.Pix, src.Width, src.Height, src.Stride, sigma)
}

func validate(dst, src []byte, width, height, stride int) (int, error) {
	if width < 1 || height < 1 {
		return 0, ErrBadDimensions
	}

	if stride < 1 || stride%width != 0 {
		return 0, ErrBadStride
	}

	ch := stride / width
	switch ch {
	case 1, 3, 4:
	default:
		return 0, ErrUnsupportedChannels
	}

	size := height * stride
	if len(src) < size {
		return 0, ErrShortInput
	}

	if len(dst) < size {
		return 0, ErrShortOutput
	}

	if aliases(dst[:size], src[:size]) {
		return 0, ErrAliasedBuffers
	}

	return ch, nil
}

// aliases reports whether the two slices share any backing memory.
func aliases(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := aLo + uintptr(len(a))
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := bLo + uintptr(len(b))

	return aLo < bHi && bLo < aHi
}

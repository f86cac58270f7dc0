package box

import (
	"math"

	"github.com/cwbudde/algo-blur/blur/pixel"
)

// passes is the number of box filters in the Gaussian approximation.
// Three passes give a piecewise-quadratic kernel, close enough to a
// Gaussian for visual work.
const passes = 3

// maxChannels bounds the per-pixel accumulator of the sliding window.
const maxChannels = 4

var scratchPool = pixel.NewPool()

// Sizes returns the ideal widths of n successive box filters approximating
// a Gaussian of standard deviation sigma. Widths are odd; the first boxes
// may be two narrower than the last ones. Follows the derivation used by
// fastblur (itself from Kovesi, "Fast Almost-Gaussian Filtering").
func Sizes(sigma float64, n int) []int {
	if n <= 0 {
		return nil
	}

	nf := float64(n)

	wIdeal := math.Sqrt(12*sigma*sigma/nf) + 1
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}

	if wl < 1 {
		wl = 1
	}

	wu := wl + 2
	wlf := float64(wl)

	mIdeal := (12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}

	return sizes
}

// Blur applies the box-cascade Gaussian approximation to an interleaved
// 8-bit pixel buffer. The contract matches gauss.Blur: stride/width derives
// the channel count (1, 3, or 4), dst and src are caller-owned, dst must be
// at least height*stride bytes, and dst is untouched on error. Unlike the
// recursive filter, dst and src may alias: src is consumed through an
// internal copy.
func Blur(dst, src []byte, width, height, stride int, sigma float64) error {
	in := &pixel.Buffer{Pix: src, Width: width, Height: height, Stride: stride}
	if err := in.Validate(); err != nil {
		return err
	}

	out := &pixel.Buffer{Pix: dst, Width: width, Height: height, Stride: stride}
	if err := out.Validate(); err != nil {
		return err
	}

	ch := stride / width
	size := height * stride

	back := scratchPool.Get(size)
	defer scratchPool.Put(back)

	// Ping-pong between dst (front) and the scratch (back): each pass
	// averages rows into the scratch and columns back into dst, so the
	// final write always lands in dst.
	front := dst[:size]
	copy(front, src[:size])

	for _, boxSize := range Sizes(sigma, passes) {
		radius := (boxSize - 1) / 2
		blurPass(front, back.Bytes(), width, height, stride, ch, radius)
	}

	return nil
}

func blurPass(front, back []byte, width, height, stride, ch, radius int) {
	// Horizontal: row y of front into row y of back.
	for y := range height {
		row := y * stride
		boxLine(back[row:], front[row:], width, ch, ch, ch, radius)
	}

	// Vertical: column x of back into column x of front.
	for x := range width {
		col := x * ch
		boxLine(front[col:], back[col:], height, ch, stride, stride, radius)
	}
}

// boxLine writes the sliding-window average of one line of n pixels from
// src to dst. Pixels beyond either end count as copies of the edge pixel.
// The window sum is maintained incrementally, so the cost per line is
// O(n + radius) regardless of the window width 2*radius+1.
func boxLine(dst, src []byte, n, ch, dstStep, srcStep, radius int) {
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}

		if i >= n {
			return n - 1
		}

		return i
	}

	norm := 1.0 / float64(2*radius+1)

	var sum [maxChannels]int

	for j := -radius; j <= radius; j++ {
		p := src[clamp(j)*srcStep:]
		for c := range ch {
			sum[c] += int(p[c])
		}
	}

	for i := range n {
		d := dst[i*dstStep:]
		for c := range ch {
			d[c] = byte(float64(sum[c])*norm + 0.5)
		}

		enter := src[clamp(i+radius+1)*srcStep:]
		leave := src[clamp(i-radius)*srcStep:]

		for c := range ch {
			sum[c] += int(enter[c]) - int(leave[c])
		}
	}
}

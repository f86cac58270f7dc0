// Package gauss implements an approximate Gaussian blur for interleaved
// 8-bit pixel buffers using a recursive (IIR) filter with constant cost per
// pixel, independent of the blur strength.
//
// The 2D blur is separable: every row is filtered left-to-right and
// right-to-left into a transposed intermediate, then every column of that
// intermediate is filtered the same way back into row-major order. Each 1D
// line is processed with one forward and one backward sweep of a
// first-order recursive filter whose coefficients [Solve] derives from
// sigma, which approximates a Gaussian smoothing kernel.
//
// Buffers are caller-owned flat byte slices with 1 (gray), 3 (RGB), or
// 4 (RGBA) interleaved channels per pixel; the channel count is derived
// from the row stride. [Blur] is the single entry point; [Coefficients]
// additionally exposes the effective 1D kernel and its spectrum for
// analysis.
package gauss

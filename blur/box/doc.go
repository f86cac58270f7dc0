// Package box approximates a Gaussian blur with three successive box
// filters, each applied as a horizontal and a vertical sliding-window
// average with clamped edge extension. [Sizes] derives the box widths that
// make the cascade match a Gaussian of the requested sigma.
//
// Compared to the recursive filter in blur/gauss, the box cascade costs
// O(pixels) per pass with a tiny constant and produces a perfectly
// symmetric kernel, at the price of a piecewise-quadratic rather than
// smooth falloff. Buffers follow the same interleaved 8-bit contract.
package box

// Package pixel provides a flat interleaved 8-bit pixel buffer descriptor
// and a scratch pool for allocation-friendly image processing. All blur
// functions accept raw []byte slices; Buffer is an optional convenience that
// helps callers carry dimensions alongside the raw samples and bridge to the
// standard image types.
package pixel

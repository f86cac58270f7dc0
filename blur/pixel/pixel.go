package pixel

import "errors"

// Errors returned by buffer validation.
var (
	ErrBadDimensions       = errors.New("pixel: width and height must be positive")
	ErrBadStride           = errors.New("pixel: stride must be a positive multiple of width")
	ErrUnsupportedChannels = errors.New("pixel: channel count must be 1, 3, or 4")
	ErrShortPix            = errors.New("pixel: pix slice shorter than height*stride")
)

// Buffer describes height rows of width pixels with interleaved 8-bit
// samples. Stride is the row length in bytes; the channel count is derived
// as Stride/Width and must be 1 (gray), 3 (RGB), or 4 (RGBA).
//
// The zero value is not valid; fill all fields or use New.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// New returns a zero-filled Buffer with stride = width*channels.
func New(width, height, channels int) *Buffer {
	if width < 1 || height < 1 || channels < 1 {
		return &Buffer{}
	}

	stride := width * channels

	return &Buffer{
		Pix:    make([]byte, height*stride),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// Channels returns the derived channel count Stride/Width.
// The result is only meaningful when Validate returns nil.
func (b *Buffer) Channels() int {
	if b.Width < 1 {
		return 0
	}

	return b.Stride / b.Width
}

// Validate checks dimensions, stride, derived channel count, and pix length.
func (b *Buffer) Validate() error {
	if b.Width < 1 || b.Height < 1 {
		return ErrBadDimensions
	}

	if b.Stride < 1 || b.Stride%b.Width != 0 {
		return ErrBadStride
	}

	switch b.Stride / b.Width {
	case 1, 3, 4:
	default:
		return ErrUnsupportedChannels
	}

	if len(b.Pix) < b.Height*b.Stride {
		return ErrShortPix
	}

	return nil
}

// Row returns the y-th row as a subslice of Pix, without copying.
// The caller must ensure 0 <= y < Height on a validated buffer.
func (b *Buffer) Row(y int) []byte {
	return b.Pix[y*b.Stride : y*b.Stride+b.Stride]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)

	return &Buffer{Pix: pix, Width: b.Width, Height: b.Height, Stride: b.Stride}
}

package pixel

import (
	"image"
	"image/draw"
)

// FromImage converts an image to a packed interleaved Buffer.
//
// *image.Gray becomes a 1-channel buffer and *image.NRGBA a 4-channel
// buffer; any other type is drawn into an NRGBA intermediate first.
// The result never shares memory with the source: rows are repacked so
// that stride == width*channels even when the source carries row padding.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		b := New(w, h, 1)
		for y := range h {
			copy(b.Row(y), src.Pix[y*src.Stride:y*src.Stride+w])
		}

		return b

	case *image.NRGBA:
		b := New(w, h, 4)
		for y := range h {
			copy(b.Row(y), src.Pix[y*src.Stride:y*src.Stride+4*w])
		}

		return b

	default:
		rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

		return FromImage(rgba)
	}
}

// Image converts the buffer back to a standard image type: Gray for one
// channel, NRGBA for three (opaque alpha) or four channels. It returns nil
// when the buffer does not validate.
func (b *Buffer) Image() image.Image {
	if b.Validate() != nil {
		return nil
	}

	switch b.Channels() {
	case 1:
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		for y := range b.Height {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.Width], b.Row(y))
		}

		return img

	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		for y := range b.Height {
			row := b.Row(y)
			out := img.Pix[y*img.Stride:]

			for x := range b.Width {
				out[4*x+0] = row[3*x+0]
				out[4*x+1] = row[3*x+1]
				out[4*x+2] = row[3*x+2]
				out[4*x+3] = 0xff
			}
		}

		return img

	default: // 4
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		for y := range b.Height {
			copy(img.Pix[y*img.Stride:y*img.Stride+4*b.Width], b.Row(y))
		}

		return img
	}
}

// Command gaussblur applies an approximate Gaussian blur to an image file.
//
// Usage:
//
//	gaussblur [flags] input
//
// The input may be PNG, JPEG, BMP, or WebP; the output format follows the
// -out extension (.png or .bmp). By default the constant-time recursive
// filter is used; -box selects the box-cascade approximation instead.
//
// Examples:
//
//	gaussblur -sigma 4 photo.png
//	gaussblur -sigma 12 -out shadow.png glyph.png
//	gaussblur -box -sigma 6 -out small.bmp photo.jpg
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/algo-blur/blur/box"
	"github.com/cwbudde/algo-blur/blur/gauss"
	"github.com/cwbudde/algo-blur/blur/pixel"
)

var (
	sigma   = flag.Float64("sigma", 2, "blur strength (standard deviation in pixels)")
	useBox  = flag.Bool("box", false, "use the box-cascade approximation instead of the recursive filter")
	outPath = flag.String("out", "", "output file (default: <input>_blur.png)")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gaussblur [flags] input")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "gaussblur:", err)
		os.Exit(1)
	}
}

func run(inPath string) error {
	src, err := decode(inPath)
	if err != nil {
		return err
	}

	in := pixel.FromImage(src)
	out := pixel.New(in.Width, in.Height, in.Channels())

	if *useBox {
		err = box.Blur(out.Pix, in.Pix, in.Width, in.Height, in.Stride, *sigma)
	} else {
		err = gauss.BlurBuffer(out, in, *sigma)
	}

	if err != nil {
		return err
	}

	dst := *outPath
	if dst == "" {
		ext := filepath.Ext(inPath)
		dst = strings.TrimSuffix(inPath, ext) + "_blur.png"
	}

	return encode(dst, out.Image())
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

func encode(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}

	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}

// SPDX-License-Identifier: MIT

// Package grayscale converts colour images to a single weighted channel.
//
// The channel mix itself is kernels.ConvertImage; this package only moves
// pixels between image.Image and the kernels.Image layout and handles
// files.
package grayscale

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/benchplot/kernels"
	"gonum.org/v1/gonum/mat"
)

// Luma601 are the ITU-R BT.601 luma weights for R, G, B.
var Luma601 = [3]float64{0.299, 0.587, 0.114}

// jpegQuality is used when the output is a JPEG.
const jpegQuality = 95

// ErrFormat indicates an output extension with no known encoder.
var ErrFormat = errors.New("grayscale: unsupported image format")

// Convert mixes the R, G, B channels of img with coefs into a gray image.
// Channel values are taken in 0..255; results are rounded and clamped to
// the same range.
func Convert(img image.Image, coefs [3]float64) (*image.Gray, error) {
	b := img.Bounds()
	px, err := kernels.NewImage(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}
	k := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			px.Pix[k], px.Pix[k+1], px.Pix[k+2] = float64(c.R), float64(c.G), float64(c.B)
			k += kernels.Channels
		}
	}

	mixed, err := kernels.ConvertImage(px, mat.NewVecDense(kernels.Channels, coefs[:]))
	if err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}

	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for i := 0; i < b.Dy(); i++ {
		for j := 0; j < b.Dx(); j++ {
			out.SetGray(j, i, color.Gray{Y: clamp8(mixed.At(i, j))})
		}
	}

	return out, nil
}

// clamp8 rounds v to the nearest level (halves away from zero) and clamps it
// to [0, 255].
func clamp8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// ConvertFile reads a JPEG or PNG from in, converts it and writes it to out.
// The output format follows out's extension: .jpg, .jpeg or .png.
func ConvertFile(in, out string, coefs [3]float64) error {
	encode, err := encoderFor(out)
	if err != nil {
		return err
	}
	src, err := decodeFile(in)
	if err != nil {
		return err
	}
	gray, err := Convert(src, coefs)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("grayscale: %w", err)
	}
	if err = encode(f, gray); err != nil {
		f.Close()

		return fmt.Errorf("grayscale: encode %q: %w", out, err)
	}

	return f.Close()
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grayscale: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("grayscale: decode %q: %w", path, err)
	}

	return img, nil
}

type encodeFunc func(f *os.File, img image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

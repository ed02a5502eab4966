// SPDX-License-Identifier: MIT

package kernels

import "gonum.org/v1/gonum/mat"

// Channels is the number of colour channels in an Image.
const Channels = 3

const (
	methodNewImage         = "NewImage"
	methodConvertImage     = "ConvertImage"
	methodConvertImageLoop = "ConvertImageLoop"
)

// Image is an H×W×3 array of channel values stored row-major, channel last:
// pixel (i, j) channel c lives at Pix[(i*W+j)*3+c].
type Image struct {
	H, W int
	Pix  []float64 // length H*W*Channels
}

// NewImage allocates a zeroed h×w image. Both sides must be ≥ 1.
func NewImage(h, w int) (Image, error) {
	if h < 1 || w < 1 {
		return Image{}, kernelErrorf(methodNewImage, ErrEmptyInput, "size %dx%d", h, w)
	}

	return Image{H: h, W: w, Pix: make([]float64, h*w*Channels)}, nil
}

// ConvertImage mixes the channels of img with weights coefs (length 3) into
// an H×W matrix: out[i,j] = Σ_c img[i,j,c]·coefs[c].
// Implementation:
//   - Stage 1 (Validate): non-empty image, 3 coefficients, Pix length H*W*3.
//   - Stage 2 (Reshape): view Pix as an (H·W)×3 matrix without copying.
//   - Stage 3 (Multiply): one matrix-vector product, reshaped to H×W.
//
// Complexity: O(H·W).
func ConvertImage(img Image, coefs mat.Vector) (*mat.Dense, error) {
	if err := checkImage(methodConvertImage, img); err != nil {
		return nil, err
	}
	if coefs.Len() != Channels {
		return nil, kernelErrorf(methodConvertImage, ErrDimensionMismatch, "%d coefficients for %d channels", coefs.Len(), Channels)
	}
	pix := mat.NewDense(img.H*img.W, Channels, img.Pix)
	var mixed mat.VecDense
	mixed.MulVec(pix, coefs)

	return mat.NewDense(img.H, img.W, mixed.RawVector().Data), nil
}

func checkImage(method string, img Image) error {
	if img.H < 1 || img.W < 1 {
		return kernelErrorf(method, ErrEmptyInput, "size %dx%d", img.H, img.W)
	}
	if len(img.Pix) != img.H*img.W*Channels {
		return kernelErrorf(method, ErrDimensionMismatch, "%d values for %dx%dx%d", len(img.Pix), img.H, img.W, Channels)
	}

	return nil
}

// Pixels copies img into nested slices [row][col][channel].
func Pixels(img Image) [][][]float64 {
	out := make([][][]float64, img.H)
	for i := range out {
		out[i] = make([][]float64, img.W)
		for j := range out[i] {
			k := (i*img.W + j) * Channels
			px := make([]float64, Channels)
			copy(px, img.Pix[k:k+Channels])
			out[i][j] = px
		}
	}

	return out
}

// ConvertImageLoop is ConvertImage over nested slices, one pixel at a time.
// Every pixel must carry len(coefs) channels.
// Complexity: O(H·W·len(coefs)).
func ConvertImageLoop(img [][][]float64, coefs []float64) ([][]float64, error) {
	if len(img) == 0 || len(img[0]) == 0 {
		return nil, kernelErrorf(methodConvertImageLoop, ErrEmptyInput, "no pixels")
	}
	out := make([][]float64, len(img))
	for i := 0; i < len(img); i++ {
		out[i] = make([]float64, len(img[i]))
		for j := 0; j < len(img[i]); j++ {
			px := img[i][j]
			if len(px) != len(coefs) {
				return nil, kernelErrorf(methodConvertImageLoop, ErrDimensionMismatch, "pixel (%d,%d) has %d channels, want %d", i, j, len(px), len(coefs))
			}
			v := 0.0
			for c := 0; c < len(px); c++ {
				v += px[c] * coefs[c]
			}
			out[i][j] = v
		}
	}

	return out, nil
}

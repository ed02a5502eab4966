package grayscale_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/benchplot/grayscale"
	"github.com/katalvlaran/benchplot/kernels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{B: 255, A: 255})
	img.Set(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{A: 255})
	img.Set(2, 1, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	return img
}

func TestConvert_Luma(t *testing.T) {
	gray, err := grayscale.Convert(testImage(), grayscale.Luma601)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 3, 2), gray.Bounds(), "W×H preserved")
	assert.Equal(t, uint8(76), gray.GrayAt(0, 0).Y, "0.299·255")
	assert.Equal(t, uint8(150), gray.GrayAt(1, 0).Y, "0.587·255")
	assert.Equal(t, uint8(29), gray.GrayAt(2, 0).Y, "0.114·255")
	assert.Equal(t, uint8(255), gray.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(0), gray.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(100), gray.GrayAt(2, 1).Y)
}

func TestConvert_Clamps(t *testing.T) {
	gray, err := grayscale.Convert(testImage(), [3]float64{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 1).Y)

	gray, err = grayscale.Convert(testImage(), [3]float64{-1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
}

// TestConvert_Rounds pins rounding to the nearest level instead of
// truncation: 0.5·255 = 127.5 becomes 128, not 127.
func TestConvert_Rounds(t *testing.T) {
	gray, err := grayscale.Convert(testImage(), [3]float64{0.5, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(128), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(50), gray.GrayAt(2, 1).Y)

	gray, err = grayscale.Convert(testImage(), [3]float64{0, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, uint8(128), gray.GrayAt(1, 0).Y)
}

func TestConvert_Empty(t *testing.T) {
	_, err := grayscale.Convert(image.NewRGBA(image.Rect(0, 0, 0, 0)), grayscale.Luma601)
	assert.ErrorIs(t, err, kernels.ErrEmptyInput)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage()))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "out.png")
	require.NoError(t, grayscale.ConvertFile(in, out, grayscale.Luma601))

	g, err := os.Open(out)
	require.NoError(t, err)
	defer g.Close()
	img, err := png.Decode(g)
	require.NoError(t, err)
	assert.Equal(t, uint8(150), color.GrayModel.Convert(img.At(1, 0)).(color.Gray).Y)

	require.NoError(t, grayscale.ConvertFile(in, filepath.Join(dir, "out.JPG"), grayscale.Luma601))
	assert.FileExists(t, filepath.Join(dir, "out.JPG"))

	err = grayscale.ConvertFile(in, filepath.Join(dir, "out.bmp"), grayscale.Luma601)
	assert.ErrorIs(t, err, grayscale.ErrFormat)

	err = grayscale.ConvertFile(filepath.Join(dir, "missing.png"), out, grayscale.Luma601)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

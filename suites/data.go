// SPDX-License-Identifier: MIT

package suites

import (
	"math/rand"

	"github.com/katalvlaran/benchplot/kernels"
	"gonum.org/v1/gonum/mat"
)

// Value ranges of generated data.
const (
	smallIntLo    = -2  // inclusive lower bound of matrix entries
	smallIntSpan  = 7   // entries in [smallIntLo, smallIntLo+smallIntSpan)
	zeroEvery     = 4   // about one element in zeroEvery is zero
	rleAlphabet   = 10  // distinct values in run-length data
	pixelLevels   = 256 // channel values in [0, pixelLevels)
	pairwiseWidth = 8   // columns of pairwise-distance operands
)

// side maps a requested size to a dimension gonum accepts; sizes below 1
// (including negative ones) become 1.
func side(n int) int {
	return max(n, 1)
}

func smallInt(rng *rand.Rand) float64 {
	return float64(smallIntLo + rng.Intn(smallIntSpan))
}

func randomDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = smallInt(rng)
	}

	return mat.NewDense(r, c, data)
}

func randomVec(rng *rand.Rand, n int, withZeros bool) *mat.VecDense {
	data := make([]float64, n)
	for i := range data {
		if withZeros && rng.Intn(zeroEvery) == 0 {
			continue
		}
		data[i] = smallInt(rng)
	}

	return mat.NewVecDense(n, data)
}

func ascending(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

func randomImage(rng *rand.Rand, h, w int) kernels.Image {
	img, _ := kernels.NewImage(h, w) // h, w ≥ 1 via side
	for i := range img.Pix {
		img.Pix[i] = float64(rng.Intn(pixelLevels))
	}

	return img
}

// vecPair holds two vectors that are permutations of each other.
type vecPair struct{ x, y *mat.VecDense }

func randomPermutedPair(rng *rand.Rand, n int) vecPair {
	x := randomVec(rng, n, false)
	perm := rng.Perm(n)
	y := mat.NewVecDense(n, nil)
	for i, j := range perm {
		y.SetVec(i, x.AtVec(j))
	}

	return vecPair{x: x, y: y}
}

// densePair holds two matrices with the same column count.
type densePair struct{ x, y *mat.Dense }

// SPDX-License-Identifier: MIT

package suites

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/benchplot/grayscale"
	"github.com/katalvlaran/benchplot/kernels"
	"github.com/katalvlaran/benchplot/sizes"
	"github.com/katalvlaran/benchplot/timing"
	"gonum.org/v1/gonum/mat"
)

// Candidate names shared by every suite.
const (
	gonumName = "gonum"
	loopName  = "loop"
)

func init() {
	register(Suite{
		Name:        "sum",
		Description: "sum of 0..n-1: floats.Sum vs a plain loop",
		XLabel:      "number of elements n",
		run:         runSum,
	})
	register(Suite{
		Name:        "diag",
		Description: "product of the non-zero diagonal of an n×n matrix",
		XLabel:      "matrix side n",
		Notes:       []string{fmt.Sprintf("entries in [%d, %d]", smallIntLo, smallIntLo+smallIntSpan-1)},
		run:         runDiag,
	})
	register(Suite{
		Name:        "multiset",
		Description: "do two length-n vectors hold the same multiset",
		XLabel:      "vector length n",
		Notes:       []string{"second vector is a permutation of the first"},
		run:         runMultiset,
	})
	register(Suite{
		Name:        "maxafterzero",
		Description: "largest element directly after a zero",
		XLabel:      "vector length n",
		Notes:       []string{fmt.Sprintf("about 1 in %d elements is zero", zeroEvery)},
		run:         runMaxAfterZero,
	})
	register(Suite{
		Name:        "image",
		Description: "weighted mix of RGB channels of an n×n image",
		XLabel:      "image side n",
		Notes:       []string{fmt.Sprintf("weights %v", grayscale.Luma601)},
		run:         runImage,
	})
	register(Suite{
		Name:        "rle",
		Description: "distinct values with their counts",
		XLabel:      "number of elements n",
		Notes:       []string{fmt.Sprintf("%d distinct values", rleAlphabet)},
		run:         runRLE,
	})
	register(Suite{
		Name:        "pairwise",
		Description: "Euclidean distances between the rows of two n×8 matrices",
		XLabel:      "rows per operand n",
		Notes:       []string{fmt.Sprintf("%d columns", pairwiseWidth)},
		run:         runPairwise,
	})
}

func runSum(r sizes.Range, _ int64, opts ...timing.Option) (*timing.Table, error) {
	gen := func(n int) *mat.VecDense { return mat.NewVecDense(side(n), ascending(side(n))) }

	return collect(r, gen, opts,
		timing.Same(gonumName, timing.Pure(func(v *mat.VecDense) float64 { return kernels.Sum(v) })),
		timing.Func(loopName, timing.Pure(kernels.SumLoop), func(v *mat.VecDense) []float64 { return kernels.Slice(v) }),
	)
}

func runDiag(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) *mat.Dense { return randomDense(rng, side(n), side(n)) }

	return collect(r, gen, opts,
		timing.Same(gonumName, timing.Pure(func(m *mat.Dense) float64 { return kernels.ProdNonZeroDiag(m) })),
		timing.Func(loopName, timing.Pure(kernels.ProdNonZeroDiagLoop), func(m *mat.Dense) [][]float64 { return kernels.Rows(m) }),
	)
}

func runMultiset(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) vecPair { return randomPermutedPair(rng, side(n)) }

	fast, err := timing.Spread(gonumName, kernels.MultisetsEqual, func(p vecPair) []any {
		return []any{p.x, p.y}
	})
	if err != nil {
		return nil, err
	}
	slow, err := timing.Spread(loopName, kernels.MultisetsEqualLoop, func(p vecPair) []any {
		return []any{kernels.Slice(p.x), kernels.Slice(p.y)}
	})
	if err != nil {
		return nil, err
	}

	return collect(r, gen, opts, fast, slow)
}

func runMaxAfterZero(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) *mat.VecDense { return randomVec(rng, side(n), true) }

	return collect(r, gen, opts,
		timing.Same(gonumName, timing.Pure(func(v *mat.VecDense) float64 {
			m, _ := kernels.MaxAfterZero(v)
			return m
		})),
		timing.Func(loopName, timing.Pure(func(x []float64) float64 {
			m, _ := kernels.MaxAfterZeroLoop(x)
			return m
		}), func(v *mat.VecDense) []float64 { return kernels.Slice(v) }),
	)
}

func runImage(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) kernels.Image { return randomImage(rng, side(n), side(n)) }
	coefs := append([]float64(nil), grayscale.Luma601[:]...)
	coefVec := mat.NewVecDense(len(coefs), coefs)

	return collect(r, gen, opts,
		timing.Same(gonumName, timing.Checked(func(img kernels.Image) (*mat.Dense, error) {
			return kernels.ConvertImage(img, coefVec)
		})),
		timing.Func(loopName, timing.Checked(func(px [][][]float64) ([][]float64, error) {
			return kernels.ConvertImageLoop(px, coefs)
		}), kernels.Pixels),
	)
}

func runRLE(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) []float64 {
		out := make([]float64, max(n, 0))
		for i := range out {
			out[i] = float64(rng.Intn(rleAlphabet))
		}
		return out
	}
	counts := func(f func([]float64) ([]float64, []int)) func([]float64) []int {
		return func(x []float64) []int {
			_, c := f(x)
			return c
		}
	}

	return collect(r, gen, opts,
		timing.Same("map", timing.Pure(counts(kernels.RunLengthEncoding))),
		timing.Same(loopName, timing.Pure(counts(kernels.RunLengthEncodingLoop))),
	)
}

func runPairwise(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	gen := func(n int) densePair {
		return densePair{
			x: randomDense(rng, side(n), pairwiseWidth),
			y: randomDense(rng, side(n), pairwiseWidth),
		}
	}

	fast, err := timing.Spread(gonumName, kernels.PairwiseDistance, func(p densePair) []any {
		return []any{p.x, p.y}
	})
	if err != nil {
		return nil, err
	}
	slow, err := timing.Spread(loopName, kernels.PairwiseDistanceLoop, func(p densePair) []any {
		return []any{kernels.Rows(p.x), kernels.Rows(p.y)}
	})
	if err != nil {
		return nil, err
	}

	return collect(r, gen, opts, fast, slow)
}

// SPDX-License-Identifier: MIT

package kernels

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	methodPairwiseDistance     = "PairwiseDistance"
	methodPairwiseDistanceLoop = "PairwiseDistanceLoop"
)

// PairwiseDistance returns the Euclidean distance between every row of x and
// every row of y as an rx×ry matrix.
// Implementation:
//   - Stage 1 (Validate): x and y must have the same column count.
//   - Stage 2 (Gram): G = x·yᵀ with one matrix product.
//   - Stage 3 (Expand): d[i,j] = sqrt(|x_i|² + |y_j|² − 2·G[i,j]), clamped at 0
//     to absorb rounding.
//
// Complexity: O(rx·ry·c).
func PairwiseDistance(x, y *mat.Dense) (*mat.Dense, error) {
	rx, cx := x.Dims()
	ry, cy := y.Dims()
	if cx != cy {
		return nil, kernelErrorf(methodPairwiseDistance, ErrDimensionMismatch, "x has %d columns, y has %d", cx, cy)
	}
	sqX := rowNorms(x, rx)
	sqY := rowNorms(y, ry)

	var d mat.Dense
	d.Mul(x, y.T())
	d.Apply(func(i, j int, g float64) float64 {
		return math.Sqrt(math.Max(0, sqX[i]+sqY[j]-2*g))
	}, &d)

	return &d, nil
}

// rowNorms returns the squared L2 norm of each of the first r rows.
func rowNorms(m *mat.Dense, r int) []float64 {
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		row := m.RowView(i)
		out[i] = mat.Dot(row, row)
	}

	return out
}

// PairwiseDistanceLoop is PairwiseDistance with three nested loops.
// Every row of x and y must have the same width.
// Complexity: O(rx·ry·c).
func PairwiseDistanceLoop(x, y [][]float64) ([][]float64, error) {
	width := -1
	for _, rows := range [][][]float64{x, y} {
		for i, row := range rows {
			if width < 0 {
				width = len(row)
			}
			if len(row) != width {
				return nil, kernelErrorf(methodPairwiseDistanceLoop, ErrDimensionMismatch, "row %d has %d columns, want %d", i, len(row), width)
			}
		}
	}

	out := make([][]float64, len(x))
	for i := range x {
		out[i] = make([]float64, len(y))
		for j := range y {
			s := 0.0
			for k := range x[i] {
				diff := x[i][k] - y[j][k]
				s += diff * diff
			}
			out[i][j] = math.Sqrt(s)
		}
	}

	return out, nil
}

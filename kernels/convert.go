// SPDX-License-Identifier: MIT

package kernels

import "gonum.org/v1/gonum/mat"

// Rows copies m into a slice of rows.
// Complexity: O(r*c).
func Rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = mat.Row(nil, i, m)
	}

	return out
}

// Slice copies v into a plain slice.
// Complexity: O(n).
func Slice(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

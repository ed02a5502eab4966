// SPDX-License-Identifier: MIT

package kernels

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ProdNonZeroDiag returns the product of the non-zero entries on the main
// diagonal of m (the leading min(r, c) entries). With no non-zero entry the
// product is 1.
// Stage 1 (Gather): walk the diagonal, keeping non-zero entries.
// Stage 2 (Reduce): floats.Prod over the kept entries.
// Complexity: O(min(r, c)).
func ProdNonZeroDiag(m mat.Matrix) float64 {
	r, c := m.Dims()
	n := min(r, c)
	kept := make([]float64, 0, n)
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < n; i++ {
			if v := raw.Data[i*raw.Stride+i]; v != 0 {
				kept = append(kept, v)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if v := m.At(i, i); v != 0 {
				kept = append(kept, v)
			}
		}
	}

	return floats.Prod(kept)
}

// ProdNonZeroDiagLoop is ProdNonZeroDiag over a slice of rows. Ragged rows
// are allowed; the diagonal stops at the first row too short to reach it.
// Complexity: O(min(r, c)).
func ProdNonZeroDiagLoop(x [][]float64) float64 {
	prod := 1.0
	for i := 0; i < len(x) && i < len(x[i]); i++ {
		if x[i][i] != 0 {
			prod *= x[i][i]
		}
	}

	return prod
}

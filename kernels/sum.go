// SPDX-License-Identifier: MIT

package kernels

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sum adds all elements of x with gonum's unrolled kernel. A nil vector sums
// to 0.
func Sum(x mat.Vector) float64 {
	if x == nil {
		return 0
	}
	if rv, ok := x.(mat.RawVectorer); ok {
		raw := rv.RawVector()
		if raw.Inc == 1 {
			return floats.Sum(raw.Data[:x.Len()])
		}
	}

	return floats.Sum(Slice(x))
}

// SumLoop adds all elements one by one.
func SumLoop(x []float64) float64 {
	s := 0.0
	for i := 0; i < len(x); i++ {
		s += x[i]
	}

	return s
}

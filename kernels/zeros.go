// SPDX-License-Identifier: MIT

package kernels

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxAfterZero returns the largest non-zero element that directly follows a
// zero in x. ok is false when no zero is followed by a non-zero element.
// Stage 1 (Find): indices of all zeros via floats.Find.
// Stage 2 (Gather): the non-zero successors of those indices.
// Stage 3 (Reduce): floats.Max.
// Complexity: O(n).
func MaxAfterZero(x mat.Vector) (max float64, ok bool) {
	s := Slice(x)
	if len(s) < 2 {
		return 0, false
	}
	zeros, _ := floats.Find(nil, func(v float64) bool { return v == 0 }, s[:len(s)-1], -1)
	next := make([]float64, 0, len(zeros))
	for _, i := range zeros {
		if v := s[i+1]; v != 0 {
			next = append(next, v)
		}
	}
	if len(next) == 0 {
		return 0, false
	}

	return floats.Max(next), true
}

// MaxAfterZeroLoop is MaxAfterZero in a single scan.
// Complexity: O(n).
func MaxAfterZeroLoop(x []float64) (max float64, ok bool) {
	for i := 1; i < len(x); i++ {
		if x[i-1] == 0 && x[i] != 0 {
			if !ok || x[i] > max {
				max = x[i]
			}
			ok = true
		}
	}

	return max, ok
}

// SPDX-License-Identifier: MIT

package kernels

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MultisetsEqual reports whether x and y hold the same values with the same
// multiplicities, in any order.
// Stage 1 (Copy): vectors into scratch slices.
// Stage 2 (Sort): sort both copies.
// Stage 3 (Compare): floats.Equal.
// Complexity: O(n log n).
func MultisetsEqual(x, y mat.Vector) bool {
	if x.Len() != y.Len() {
		return false
	}
	a, b := Slice(x), Slice(y)
	sort.Float64s(a)
	sort.Float64s(b)

	return floats.Equal(a, b)
}

// MultisetsEqualLoop matches every element of x against a not-yet-used equal
// element of y.
// Complexity: O(n²).
func MultisetsEqualLoop(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	used := make([]bool, len(y))
	for _, v := range x {
		found := false
		for j, w := range y {
			if !used[j] && w == v {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

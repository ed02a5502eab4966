// SPDX-License-Identifier: MIT

package kernels

import "math"

// RunLengthEncoding returns the distinct values of x in order of first
// appearance together with how many times each occurs in x overall.
//
//	[2 2 2 3 3 3 5] → values [2 3 5], counts [3 3 1]
//
// Counts are totals, not consecutive runs: [1 2 1] → [1 2], [2 1].
// All NaNs count as one value, reported where the first NaN appears.
// Complexity: O(n) expected (hash map).
func RunLengthEncoding(x []float64) (values []float64, counts []int) {
	pos := make(map[float64]int, len(x))
	nan := -1
	for _, v := range x {
		if math.IsNaN(v) {
			if nan >= 0 {
				counts[nan]++
				continue
			}
			nan = len(values)
		} else if i, seen := pos[v]; seen {
			counts[i]++
			continue
		} else {
			pos[v] = len(values)
		}
		values = append(values, v)
		counts = append(counts, 1)
	}

	return values, counts
}

// RunLengthEncodingLoop is RunLengthEncoding with a linear membership scan
// and a separate counting pass per distinct value.
// Complexity: O(n·d) for d distinct values.
func RunLengthEncodingLoop(x []float64) (values []float64, counts []int) {
	for _, v := range x {
		if indexOf(values, v) < 0 {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, nil
	}
	counts = make([]int, len(values))
	for i, v := range values {
		for _, w := range x {
			if sameValue(w, v) {
				counts[i]++
			}
		}
	}

	return values, counts
}

// sameValue is == except that NaN equals NaN.
func sameValue(a, b float64) bool {
	return a == b || (a != a && b != b)
}

func indexOf(s []float64, v float64) int {
	for i, w := range s {
		if sameValue(w, v) {
			return i
		}
	}

	return -1
}

// SPDX-License-Identifier: MIT

// Package sizes produces the input sizes a benchmark sweeps over.
//
// A Range is a closed integer interval [Min, Max] walked with a non-zero Step:
//
//	Step > 0: ascending, starting at Min;
//	Step < 0: descending, starting at Max.
//
// Two constructors cover the two ways a caller usually thinks about a sweep:
//
//	UpTo(n, step)          — 0..n
//	Between(lo, hi, step)  — lo..hi
//
// A Sequencer pairs a Range with a data generator gen(size) and hands out
// Points lazily, one per step. Generators are called on demand only; a
// Sequencer is forward-only and cannot be restarted.
//
//	r, _ := sizes.Between(0, 1000, 250)
//	seq, _ := sizes.New(func(n int) []float64 { return make([]float64, n) }, r)
//	for p := range seq.All() {
//		_ = p.Size // 0, 250, 500, 750, 1000
//	}
package sizes

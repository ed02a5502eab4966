// SPDX-License-Identifier: MIT

package sizes

import (
	"fmt"
	"math"
)

// Method names used as error context.
const (
	methodUpTo     = "UpTo"
	methodBetween  = "Between"
	methodValidate = "Range.Validate"
)

// Range is a closed interval of input sizes walked with a non-zero Step.
//
// Fields:
//   - Min, Max: inclusive bounds, Min ≤ Max.
//   - Step: signed increment; its sign picks the direction, not the bounds.
//
// The zero Range is invalid (Step == 0). Build ranges with UpTo or Between,
// or call Validate on a hand-built literal.
type Range struct {
	Min  int
	Max  int
	Step int
}

// UpTo returns the range [0, n] walked with step.
// Stage 1 (Validate): n must be > 0 (n == 0 names no interval), step ≠ 0.
// Stage 2 (Finalize): return Range{0, n, step}.
// Complexity: O(1).
func UpTo(n, step int) (Range, error) {
	if n == 0 {
		return Range{}, rangeErrorf(methodUpTo, "single endpoint must be non-zero")
	}
	if n < 0 {
		return Range{}, rangeErrorf(methodUpTo, "min 0 > max %d", n)
	}
	if step == 0 {
		return Range{}, rangeErrorf(methodUpTo, "step must be non-zero")
	}

	return Range{Min: 0, Max: n, Step: step}, nil
}

// Between returns the range [min, max] walked with step.
// Complexity: O(1).
func Between(min, max, step int) (Range, error) {
	r := Range{Min: min, Max: max, Step: step}
	if err := r.check(methodBetween); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate reports whether r satisfies Min ≤ Max and Step ≠ 0.
func (r Range) Validate() error {
	return r.check(methodValidate)
}

func (r Range) check(method string) error {
	if r.Step == 0 {
		return rangeErrorf(method, "step must be non-zero")
	}
	if r.Min > r.Max {
		return rangeErrorf(method, "min %d > max %d", r.Min, r.Max)
	}

	return nil
}

// Count returns how many sizes the range yields: floor((Max-Min)/|Step|) + 1.
// The span is computed in uint64, so ranges wider than MaxInt count
// correctly; a count past MaxInt saturates at MaxInt.
// An invalid range yields 0.
// Complexity: O(1).
func (r Range) Count() int {
	if r.Validate() != nil {
		return 0
	}
	span := uint64(r.Max) - uint64(r.Min) // Max ≥ Min, exact in two's complement
	step := uint64(r.Step)
	if r.Step < 0 {
		step = -step
	}
	q := span / step
	if q >= math.MaxInt {
		return math.MaxInt
	}

	return int(q) + 1
}

// Start returns the first size emitted: Min for ascending, Max for descending.
func (r Range) Start() int {
	if r.Step < 0 {
		return r.Max
	}

	return r.Min
}

// String implements fmt.Stringer, e.g. "[0..1000 step 250]".
func (r Range) String() string {
	return fmt.Sprintf("[%d..%d step %d]", r.Min, r.Max, r.Step)
}

// Sizes lists the sizes a fresh Sequencer over r would emit, in order,
// without calling any generator. An invalid range yields nil.
// Complexity: O(Count) time and memory.
func Sizes(r Range) []int {
	n := r.Count()
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	cur := r.Start()
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur += r.Step
	}

	return out
}

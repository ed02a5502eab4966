// SPDX-License-Identifier: MIT

package sizes

import "iter"

// Point is one step of a sweep: the input size and the data generated for it.
type Point[T any] struct {
	Size int // input size handed to the generator
	Data T   // gen(Size)
}

// Sequencer lazily yields Points over a Range.
// It is forward-only: once exhausted it stays exhausted.
// A Sequencer is not safe for concurrent use.
type Sequencer[T any] struct {
	gen  func(int) T
	rng  Range
	cur  int
	done bool
}

// New builds a Sequencer that calls gen once per size in r.
// Stage 1 (Validate): gen non-nil, r valid (literals are re-checked here).
// Stage 2 (Prepare): place the cursor at r.Start().
// Complexity: O(1); gen is not called.
func New[T any](gen func(int) T, r Range) (*Sequencer[T], error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &Sequencer[T]{gen: gen, rng: r, cur: r.Start()}, nil
}

// Range returns the range the sequencer walks.
func (s *Sequencer[T]) Range() Range {
	return s.rng
}

// Next returns the next Point, or false once the cursor leaves [Min, Max].
// Stage 1 (Check): cursor inside the closed interval.
// Stage 2 (Execute): generate data for the cursor.
// Stage 3 (Advance): move by Step; an overflowing step ends the sweep.
// Complexity: O(1) plus the cost of gen.
func (s *Sequencer[T]) Next() (Point[T], bool) {
	if s.done || s.cur < s.rng.Min || s.cur > s.rng.Max {
		s.done = true
		var zero Point[T]

		return zero, false
	}
	p := Point[T]{Size: s.cur, Data: s.gen(s.cur)}

	next := s.cur + s.rng.Step
	if (s.rng.Step > 0 && next < s.cur) || (s.rng.Step < 0 && next > s.cur) {
		s.done = true // wrapped around
	}
	s.cur = next

	return p, true
}

// All returns a range-over-func view of the remaining Points.
// Breaking out of the loop leaves the sequencer positioned after the last
// Point delivered.
func (s *Sequencer[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

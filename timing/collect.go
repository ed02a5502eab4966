// SPDX-License-Identifier: MIT

package timing

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/benchplot/sizes"
)

const methodCollect = "Collect"

// Collect times every candidate of set on every Point pulled from seq.
//
// Implementation:
//   - Stage 1 (Validate): set non-empty, seq non-nil, repetitions ≥ 1. The
//     sequencer (and therefore the data generator) is not touched until this
//     passes.
//   - Stage 2 (Bind): for each Point, run every candidate's validator on the
//     data. Validators are not timed.
//   - Stage 3 (Measure): for each candidate in order, time R back-to-back
//     calls and record the total.
//   - Stage 4 (Record): append the Row, log it, notify the observer.
//
// A candidate error aborts the whole run with *CandidateError; a binding
// error (e.g. ErrArity) aborts it with a wrapped ErrInvalidConfiguration.
// No partial Table is returned. There is no timeout: a candidate that never
// returns blocks Collect forever.
//
// Complexity: O(n·k·R) candidate calls for n points and k candidates.
func Collect[T any](set *Set[T], seq *sizes.Sequencer[T], opts ...Option) (*Table, error) {
	cfg := gatherOptions(opts...)
	if set.Len() == 0 {
		return nil, configErrorf(methodCollect, "empty candidate set")
	}
	if seq == nil {
		return nil, configErrorf(methodCollect, "nil sequencer")
	}
	if cfg.repetitions < 1 {
		return nil, configErrorf(methodCollect, "repetitions %d < 1", cfg.repetitions)
	}

	table, err := NewTable(set.Names(), cfg.repetitions)
	if err != nil {
		return nil, err
	}
	k := set.Len()
	calls := make([]func() error, k)

	for p := range seq.All() {
		for i, c := range set.cands {
			call, err := c.bind(p.Data)
			if err != nil {
				return nil, fmt.Errorf("%s: size %d: %w", methodCollect, p.Size, err)
			}
			calls[i] = call
		}

		elapsed := make([]time.Duration, k)
		for i, call := range calls {
			d, err := measure(cfg.clock, call, cfg.repetitions)
			if err != nil {
				return nil, &CandidateError{Name: set.cands[i].name, Size: p.Size, Err: err}
			}
			elapsed[i] = d
		}
		clear(calls) // drop validated data before the next point

		if err = table.Append(p.Size, elapsed); err != nil {
			return nil, err
		}
		logRow(cfg.logger, table.names, p.Size, elapsed)
		if cfg.observer != nil {
			cells := make([]time.Duration, k)
			copy(cells, elapsed)
			cfg.observer(Row{Size: p.Size, Elapsed: cells})
		}
	}

	return table, nil
}

// measure times reps back-to-back calls and returns the total.
// The first error stops the loop.
func measure(clk Clock, call func() error, reps int) (time.Duration, error) {
	start := clk.Now()
	for r := 0; r < reps; r++ {
		if err := call(); err != nil {
			return 0, err
		}
	}

	return clk.Now().Sub(start), nil
}

func logRow(l *slog.Logger, names []string, size int, elapsed []time.Duration) {
	attrs := make([]any, 0, len(names)+1)
	attrs = append(attrs, slog.Int("size", size))
	for i, n := range names {
		attrs = append(attrs, slog.Duration(n, elapsed[i]))
	}
	l.Debug("timing row", attrs...)
}

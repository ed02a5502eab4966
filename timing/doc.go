// SPDX-License-Identifier: MIT

// Package timing runs candidate implementations against a size sweep and
// collects their wall-clock timings into a Table.
//
// The pieces:
//
//   - Candidate: a named function bound to the validator that shapes the
//     generated data for it (Func, Same, Spread). Pairing happens when the
//     candidate is built, so a validator can never drift out of step with
//     its function.
//   - Set: an ordered, non-empty collection of uniquely named
//     candidates. Insertion order is column order.
//   - Collect: pulls Points from a sizes.Sequencer, validates the data for
//     every candidate, then times R back-to-back calls per candidate.
//   - Table: one Row per size, one column per candidate. Each cell holds
//     the TOTAL time for the R calls; divide by Repetitions (or use PerCall)
//     for a per-call figure.
//
// Timing is plain wall-clock: no warm-up, no outlier rejection, no
// concurrency. Collect has no cancellation; a candidate that never returns
// blocks the run forever.
//
//	set, _ := timing.NewSet(
//		timing.Same("sum", timing.Pure(kernels.Sum)),
//		timing.Func("loop", timing.Pure(kernels.SumLoop), kernels.Slice),
//	)
//	table, err := timing.Collect(set, seq, timing.WithRepetitions(5))
package timing

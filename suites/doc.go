// SPDX-License-Identifier: MIT

// Package suites binds the kernels exercises into ready-to-run benchmarks.
//
// Each Suite pairs the gonum flavour of an exercise (pass-through validator)
// with its Loop flavour (a validator that converts gonum values to plain
// slices), generates reproducible random data from a seed, and runs the
// timing collector over a sizes.Range.
//
// gonum has no empty matrices, so matrix and vector suites build their data
// with side max(n, 1); the table still records the requested size n.
//
// The multiset and pairwise suites take two operands and use timing.Spread
// (unpack mode).
package suites

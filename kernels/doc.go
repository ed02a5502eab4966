// SPDX-License-Identifier: MIT

// Package kernels holds the small numeric exercises that benchplot compares.
//
// Every exercise comes in two flavours:
//
//   - the plain name (ProdNonZeroDiag, PairwiseDistance, ...) works on gonum
//     types and leans on gonum's mat/floats routines;
//   - the Loop variant works on plain Go slices with explicit loops, the way
//     a first, unoptimised solution would be written.
//
// Both flavours of an exercise return the same answer for the same input;
// the tests pin that down. Rows, Slice and Pixels turn gonum values into
// plain slices and serve as validators for the Loop candidates.
package kernels

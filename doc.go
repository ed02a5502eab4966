// SPDX-License-Identifier: MIT

// Package benchplot compares how competing implementations of the same task
// scale with input size, and draws the comparison as a time-versus-size chart.
//
// A run has three steps, each in its own package:
//
//	sizes/   — Range and Sequencer: walk a size interval and generate one
//	           input per size, lazily.
//	timing/  — Candidate, Set, Collect, Table: time every candidate on every
//	           generated input, after shaping the input with its validator.
//	chart/   — Build and Renderer: turn a Table into a chart, show it and/or
//	           save it as PNG.
//
// Supporting packages:
//
//	kernels/   — the routines being compared, each as a gonum-backed version
//	             and an explicit-loop version.
//	suites/    — ready-made candidate sets over kernels with seeded data.
//	grayscale/ — RGB to gray conversion of image files.
//
// The benchplot command (cmd/benchplot) wires these behind a cobra CLI with
// viper configuration:
//
//	benchplot list
//	benchplot run sum --max 100000 --step 10000 --reps 3
//	benchplot gray photo.jpg photo-gray.png
//	benchplot config
package benchplot

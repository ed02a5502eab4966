// SPDX-License-Identifier: MIT

// Package chart turns a timing.Table into a line chart of time versus input
// size, one line per candidate.
//
// Rendering is split in two steps:
//
//   - Build  — a pure, renderer-independent description (Chart) of what will
//     be drawn: title, axis labels, one Series per candidate in column order.
//   - Renderer.Render — draws the Chart with gonum/plot onto a raster canvas
//     at a fixed DPI (500 by default), crops it to its content, then, in
//     this order and each independently, shows it (Spec.Show) and saves it
//     as "<OutputDir>/<Title>.png" (Spec.Save).
//
// The y axis is always "time in seconds". The x label is the caller's base
// label, followed by a blank line, any notes, and a "repetitions per size"
// footer when the repetition count is known.
//
// An empty table is valid and renders axes with no lines.
package chart

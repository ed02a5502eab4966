// SPDX-License-Identifier: MIT
// Package: benchplot/chart
//
// options.go: functional options for NewRenderer.
//
// Option constructors panic on meaningless values (non-positive DPI or size,
// nil collaborators); callers feeding user input validate it first.

package chart

import (
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"
)

// Defaults.
const (
	// DefaultDPI is the raster resolution of rendered charts.
	DefaultDPI = 500

	// DefaultOutputDir is where saved charts land.
	DefaultOutputDir = "."
)

// Default canvas size (inches), matching the usual 4:3 figure.
var (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// Option customizes a Renderer.
type Option func(*Renderer)

// WithOutputDir sets the directory charts are saved into. "" means ".".
func WithOutputDir(dir string) Option {
	return func(r *Renderer) {
		if dir == "" {
			dir = DefaultOutputDir
		}
		r.outDir = dir
	}
}

// WithDPI sets the raster resolution. Panics on dpi ≤ 0.
func WithDPI(dpi int) Option {
	if dpi <= 0 {
		panic("chart: WithDPI: dpi must be > 0")
	}

	return func(r *Renderer) {
		r.dpi = dpi
	}
}

// WithSize sets the canvas size before cropping. Panics on non-positive sides.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic("chart: WithSize: width and height must be > 0")
	}

	return func(r *Renderer) {
		r.width, r.height = w, h
	}
}

// WithDisplayer sets how Spec.Show presents a chart. Panics on nil.
func WithDisplayer(d Displayer) Option {
	if d == nil {
		panic("chart: WithDisplayer(nil)")
	}

	return func(r *Renderer) {
		r.display = d
	}
}

// WithLogger attaches a logger; renders are logged at Debug. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("chart: WithLogger(nil)")
	}

	return func(r *Renderer) {
		r.logger = l
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/benchplot/timing"
)

// YLabel is the fixed y-axis label.
const YLabel = "time in seconds"

// repetitionsFooter is the last x-label line when the count is known.
const repetitionsFooter = "repetitions per size: %d"

// Spec describes one render call.
//
// Fields:
//   - Title       — chart title; also the saved file's base name.
//   - XLabel      — first line of the x-axis label (what the size measures).
//   - Notes       — extra x-label lines, in order (e.g. matrix shapes).
//   - Show, Save  — side effects, applied in that order.
//   - Repetitions — calls summed per cell; 0 falls back to the table's own
//     count, and nothing is printed when both are 0.
type Spec struct {
	Title       string
	XLabel      string
	Notes       []string
	Show        bool
	Save        bool
	Repetitions int
}

// Series is one candidate's line: X = sizes, Y = seconds.
type Series struct {
	Name string
	X, Y []float64
}

// Chart is the renderer-independent content of a plot.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	Legend bool
	Series []Series
}

// Build describes the chart for t without drawing anything.
// Stage 1 (Validate): t non-nil.
// Stage 2 (Labels): compose the x label from s.
// Stage 3 (Series): one Series per column, in column order.
// Complexity: O(n·k).
func Build(t *timing.Table, s Spec) (*Chart, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	reps := s.Repetitions
	if reps == 0 {
		reps = t.Repetitions()
	}

	sizes := t.Sizes()
	x := make([]float64, len(sizes))
	for i, n := range sizes {
		x[i] = float64(n)
	}

	names := t.Names()
	series := make([]Series, len(names))
	for i, name := range names {
		y, err := t.Seconds(name)
		if err != nil {
			return nil, fmt.Errorf("chart: Build: %w", err)
		}
		xs := make([]float64, len(x))
		copy(xs, x)
		series[i] = Series{Name: name, X: xs, Y: y}
	}

	return &Chart{
		Title:  s.Title,
		XLabel: composeXLabel(s.XLabel, s.Notes, reps),
		YLabel: YLabel,
		Grid:   true,
		Legend: true,
		Series: series,
	}, nil
}

// composeXLabel joins base, a blank line, the notes and the footer.
func composeXLabel(base string, notes []string, reps int) string {
	extra := make([]string, 0, len(notes)+1)
	extra = append(extra, notes...)
	if reps > 0 {
		extra = append(extra, fmt.Sprintf(repetitionsFooter, reps))
	}
	if len(extra) == 0 {
		return base
	}

	return base + "\n\n" + strings.Join(extra, "\n")
}

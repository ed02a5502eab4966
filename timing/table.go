// SPDX-License-Identifier: MIT

package timing

import (
	"fmt"
	"time"
)

const methodNewTable = "NewTable"

// Row holds the timings for one input size.
// Elapsed[i] belongs to the i-th candidate in the Table's Names order and is
// the total over all repetitions.
type Row struct {
	Size    int
	Elapsed []time.Duration
}

// Table is the result of one run: one Row per size, one column per candidate
// plus the size column. Columns are addressed by candidate name through an
// explicit name → index map; insertion order is preserved.
type Table struct {
	names []string
	index map[string]int
	reps  int
	rows  []Row
}

// NewTable creates an empty table with the given candidate columns.
// repetitions records how many calls each cell sums (0 = unknown).
// Names must be non-empty and unique.
// Complexity: O(k).
func NewTable(names []string, repetitions int) (*Table, error) {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return nil, configErrorf(methodNewTable, "column %d has an empty name", i)
		}
		if _, dup := index[n]; dup {
			return nil, configErrorf(methodNewTable, "duplicate column %q", n)
		}
		index[n] = i
	}
	if repetitions < 0 {
		return nil, configErrorf(methodNewTable, "repetitions %d < 0", repetitions)
	}
	cols := make([]string, len(names))
	copy(cols, names)

	return &Table{names: cols, index: index, reps: repetitions}, nil
}

// Append adds a row. elapsed must have exactly one entry per candidate.
// The slice is copied.
func (t *Table) Append(size int, elapsed []time.Duration) error {
	if len(elapsed) != len(t.names) {
		return fmt.Errorf("Table.Append(size=%d): got %d cells, want %d: %w",
			size, len(elapsed), len(t.names), ErrRowWidth)
	}
	cells := make([]time.Duration, len(elapsed))
	copy(cells, elapsed)
	t.rows = append(t.rows, Row{Size: size, Elapsed: cells})

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the number of columns: candidates + the size column.
func (t *Table) Columns() int { return len(t.names) + 1 }

// Repetitions returns how many calls each cell sums (0 = unknown).
func (t *Table) Repetitions() int { return t.reps }

// Names returns candidate names in column order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Rows returns a deep copy of all rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		cells := make([]time.Duration, len(r.Elapsed))
		copy(cells, r.Elapsed)
		out[i] = Row{Size: r.Size, Elapsed: cells}
	}

	return out
}

// Sizes returns the size column.
func (t *Table) Sizes() []int {
	out := make([]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Size
	}

	return out
}

// Column returns the totals recorded for the named candidate.
func (t *Table) Column(name string) ([]time.Duration, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Table.Column(%q): %w", name, ErrUnknownColumn)
	}
	out := make([]time.Duration, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Elapsed[j]
	}

	return out, nil
}

// Seconds returns the named column as float64 seconds.
func (t *Table) Seconds(name string) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, d := range col {
		out[i] = d.Seconds()
	}

	return out, nil
}

// PerCall returns the named column divided by Repetitions.
// With unknown repetitions (0) the totals are returned unchanged.
func (t *Table) PerCall(name string) ([]time.Duration, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if t.reps > 1 {
		for i := range col {
			col[i] /= time.Duration(t.reps)
		}
	}

	return col, nil
}

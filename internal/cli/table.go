// SPDX-License-Identifier: MIT

package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/benchplot/timing"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	sizeStyle   = cellStyle.Align(lipgloss.Right)
)

// secondsFormat renders a duration in seconds with microsecond resolution.
func secondsFormat(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}

// formatTable renders t as a bordered table: size, then one column per
// candidate, values in seconds (totals over all repetitions).
func formatTable(t *timing.Table) string {
	names := t.Names()
	headers := append([]string{"size"}, names...)

	rows := make([][]string, 0, t.Len())
	for _, r := range t.Rows() {
		cells := make([]string, 0, len(headers))
		cells = append(cells, strconv.Itoa(r.Size))
		for _, d := range r.Elapsed {
			cells = append(cells, secondsFormat(d.Seconds()))
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return sizeStyle
			default:
				return cellStyle
			}
		}).
		String()
}

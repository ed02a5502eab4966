// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/benchplot/suites"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([][]string, 0, len(suites.Names()))
			for _, s := range suites.All() {
				rows = append(rows, []string{s.Name, s.XLabel, s.Description})
			}
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("suite", "size", "description").
				Rows(rows...).
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}

					return cellStyle
				})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.String())

			return err
		},
	}
}

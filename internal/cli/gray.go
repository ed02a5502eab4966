// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/benchplot/grayscale"
	"github.com/spf13/cobra"
)

func newGrayCmd(a *app) *cobra.Command {
	var coefs []float64

	cmd := &cobra.Command{
		Use:   "gray <in> <out>",
		Short: "Convert a PNG or JPEG image to grayscale",
		Long: `Gray mixes the red, green and blue channels of <in> with --coefs and writes
the result to <out>. The output format follows the extension of <out>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(coefs) != len(grayscale.Luma601) {
				return fmt.Errorf("gray: --coefs needs %d values, got %d", len(grayscale.Luma601), len(coefs))
			}
			var c [3]float64
			copy(c[:], coefs)

			if err := grayscale.ConvertFile(args[0], args[1], c); err != nil {
				return err
			}
			a.logger.Info("image converted", slog.String("in", args[0]), slog.String("out", args[1]))
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])

			return err
		},
	}
	cmd.Flags().Float64SliceVar(&coefs, "coefs", append([]float64(nil), grayscale.Luma601[:]...), "red, green and blue weights")

	return cmd
}

// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/benchplot/chart"
	"github.com/katalvlaran/benchplot/sizes"
	"github.com/katalvlaran/benchplot/suites"
	"github.com/katalvlaran/benchplot/timing"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

type runFlags struct {
	min, max, step int
	title          string
	notes          []string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <suite>",
		Short: "Time a suite over a range of sizes, print and plot the result",
		Long: `Run times every candidate of a suite at each size of the range and prints
the totals in seconds. With --max omitted, --min is the single endpoint and
the sweep covers 0..min.`,
		Example: `  benchplot run sum --max 100000 --step 10000
  benchplot run rle --min 5000 --step 500 --reps 3 --note "values in [0,10)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := f.rangeFor(cmd)
			if err != nil {
				return err
			}

			return a.run(cmd, args[0], r, f)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.min, "min", 0, "first size (the only endpoint when --max is omitted)")
	fs.IntVar(&f.max, "max", 0, "last size")
	fs.IntVar(&f.step, "step", 1, "size increment; negative walks downward")
	fs.StringVar(&f.title, "title", "", "chart title and file name (default: suite name)")
	fs.StringArrayVar(&f.notes, "note", nil, "extra x-axis label line (repeatable)")
	fs.Int("reps", 1, "calls per candidate and size")
	fs.Int64("seed", 1, "random data seed")
	fs.Bool("show", false, "open the chart in the system viewer")
	fs.Bool("save", true, "save the chart as PNG")
	fs.String("out", "graphs", "directory for saved charts")
	fs.Int("dpi", chart.DefaultDPI, "chart resolution")
	fs.Float64("width", 6.4, "canvas width in inches")
	fs.Float64("height", 4.8, "canvas height in inches")

	return cmd
}

// rangeFor builds the size range from the flags.
func (f runFlags) rangeFor(cmd *cobra.Command) (sizes.Range, error) {
	if !cmd.Flags().Changed("max") {
		return sizes.UpTo(f.min, f.step)
	}

	return sizes.Between(f.min, f.max, f.step)
}

func (a *app) run(cmd *cobra.Command, name string, r sizes.Range, f runFlags) error {
	s, err := suites.Lookup(name)
	if err != nil {
		return err
	}
	title := f.title
	if title == "" {
		title = s.Name
	}

	a.logger.Info("running suite", slog.String("suite", s.Name), slog.String("range", r.String()),
		slog.Int("repetitions", a.cfg.Repetitions), slog.Int64("seed", a.cfg.Seed))

	t, err := s.Run(r, a.cfg.Seed,
		timing.WithRepetitions(a.cfg.Repetitions),
		timing.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatTable(t))

	if a.cfg.Save {
		if err = os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("run %s: %w", s.Name, err)
		}
	}

	rdr := chart.NewRenderer(
		chart.WithOutputDir(a.cfg.OutputDir),
		chart.WithDPI(a.cfg.DPI),
		chart.WithSize(vg.Length(a.cfg.Width)*vg.Inch, vg.Length(a.cfg.Height)*vg.Inch),
		chart.WithDisplayer(a.displayer),
		chart.WithLogger(a.logger),
	)
	notes := append(append([]string(nil), s.Notes...), f.notes...)
	if _, err = rdr.Render(t, chart.Spec{
		Title:       title,
		XLabel:      s.XLabel,
		Notes:       notes,
		Show:        a.cfg.Show,
		Save:        a.cfg.Save,
		Repetitions: a.cfg.Repetitions,
	}); err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}
	if a.cfg.Save {
		fmt.Fprintf(out, "saved %s\n", rdr.Path(title))
	}

	return nil
}

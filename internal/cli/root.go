// SPDX-License-Identifier: MIT

// Package cli implements the benchplot command tree.
package cli

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/benchplot/chart"
	"github.com/katalvlaran/benchplot/internal/config"
	"github.com/katalvlaran/benchplot/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	v         *viper.Viper
	cfgFile   string
	cfg       config.Config
	logger    *slog.Logger
	displayer chart.Displayer
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		v:         viper.New(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		displayer: chart.SystemViewer{},
	})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "benchplot",
		Short: "Time competing implementations over growing inputs and plot the result",
		Long: `benchplot runs a benchmark suite over a range of input sizes, times every
candidate implementation at each size, prints the timings as a table and
plots time versus size.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "log format: text or json")

	root.AddCommand(newListCmd(), newRunCmd(a), newGrayCmd(a), newConfigCmd(a))

	return root
}

// load resolves configuration for cmd and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("config loaded", slog.String("file", a.v.ConfigFileUsed()))

	return nil
}

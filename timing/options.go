// SPDX-License-Identifier: MIT
// Package: benchplot/timing
//
// options.go: functional options for Collect.
//
// Option constructors panic only on nil arguments (programmer error).
// Numeric values are validated by Collect and reported as
// ErrInvalidConfiguration, since they usually come from user configuration.

package timing

import (
	"io"
	"log/slog"
	"time"
)

// DefaultRepetitions is the number of back-to-back calls timed per cell.
const DefaultRepetitions = 1

// Clock is the time source used to measure candidates.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option customizes a Collect call.
type Option func(*collectConfig)

type collectConfig struct {
	repetitions int
	clock       Clock
	logger      *slog.Logger
	observer    func(Row)
}

// WithRepetitions sets how many times each candidate is called per size.
// The recorded value is the total for all n calls. n must be ≥ 1.
func WithRepetitions(n int) Option {
	return func(c *collectConfig) {
		c.repetitions = n
	}
}

// WithClock replaces the wall clock, mainly for tests. Panics on nil.
func WithClock(clk Clock) Option {
	if clk == nil {
		panic("timing: WithClock(nil)")
	}

	return func(c *collectConfig) {
		c.clock = clk
	}
}

// WithLogger attaches a logger; rows are logged at Debug. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("timing: WithLogger(nil)")
	}

	return func(c *collectConfig) {
		c.logger = l
	}
}

// WithObserver registers a hook called with a copy of every completed row.
// Panics on nil.
func WithObserver(fn func(Row)) Option {
	if fn == nil {
		panic("timing: WithObserver(nil)")
	}

	return func(c *collectConfig) {
		c.observer = fn
	}
}

func gatherOptions(opts ...Option) collectConfig {
	cfg := collectConfig{
		repetitions: DefaultRepetitions,
		clock:       systemClock{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT

package suites

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/benchplot/sizes"
	"github.com/katalvlaran/benchplot/timing"
)

// ErrUnknownSuite indicates a Lookup by a name that is not registered.
var ErrUnknownSuite = errors.New("suites: unknown suite")

// runFunc times a suite over r with data drawn from seed.
type runFunc func(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error)

// Suite is a named, ready-to-run benchmark.
type Suite struct {
	Name        string
	Description string
	XLabel      string   // what the size measures
	Notes       []string // extra chart annotations
	run         runFunc
}

// Run times the suite's candidates over r. The same seed yields the same data.
func (s Suite) Run(r sizes.Range, seed int64, opts ...timing.Option) (*timing.Table, error) {
	if s.run == nil {
		return nil, fmt.Errorf("suite %q: %w", s.Name, ErrUnknownSuite)
	}

	return s.run(r, seed, opts...)
}

var registry = map[string]Suite{}

func register(s Suite) {
	if _, dup := registry[s.Name]; dup {
		panic("suites: duplicate suite " + s.Name)
	}
	registry[s.Name] = s
}

// Lookup returns the suite registered under name.
func Lookup(name string) (Suite, error) {
	s, ok := registry[name]
	if !ok {
		return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}

	return s, nil
}

// Names lists registered suite names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// All lists registered suites sorted by name.
func All() []Suite {
	out := make([]Suite, 0, len(registry))
	for _, n := range Names() {
		out = append(out, registry[n])
	}

	return out
}

// collect is the common Sequencer → Set → Collect pipeline.
func collect[T any](r sizes.Range, gen func(int) T, opts []timing.Option, cands ...timing.Candidate[T]) (*timing.Table, error) {
	set, err := timing.NewSet(cands...)
	if err != nil {
		return nil, err
	}
	seq, err := sizes.New(gen, r)
	if err != nil {
		return nil, err
	}

	return timing.Collect(set, seq, opts...)
}

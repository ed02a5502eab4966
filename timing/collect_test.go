package timing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/benchplot/sizes"
	"github.com/katalvlaran/benchplot/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock only moves when a test advances it.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func rangeList(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func builtinSum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}

func manualSum(xs []int) int {
	s := 0
	for i := 0; i < len(xs); i++ {
		s = s + xs[i]
	}

	return s
}

func mustSeq[T any](t *testing.T, gen func(int) T, lo, hi, step int) *sizes.Sequencer[T] {
	t.Helper()
	r, err := sizes.Between(lo, hi, step)
	require.NoError(t, err)
	seq, err := sizes.New(gen, r)
	require.NoError(t, err)

	return seq
}

// TestCollect_EndToEnd runs the sum scenario: 0..1000 step 250, R=5.
func TestCollect_EndToEnd(t *testing.T) {
	set, err := timing.NewSet(
		timing.Same("builtin_sum", timing.Pure(builtinSum)),
		timing.Same("manual_sum", timing.Pure(manualSum)),
	)
	require.NoError(t, err)

	table, err := timing.Collect(set, mustSeq(t, rangeList, 0, 1000, 250), timing.WithRepetitions(5))
	require.NoError(t, err)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t, 3, table.Columns())
	assert.Equal(t, 5, table.Repetitions())
	assert.Equal(t, []int{0, 250, 500, 750, 1000}, table.Sizes())
	assert.Equal(t, []string{"builtin_sum", "manual_sum"}, table.Names())
	for _, row := range table.Rows() {
		require.Len(t, row.Elapsed, 2)
		for _, d := range row.Elapsed {
			assert.GreaterOrEqual(t, d, time.Duration(0))
		}
	}
}

// TestCollect_RepetitionsSumTotal checks that R calls of t each record R·t.
func TestCollect_RepetitionsSumTotal(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	const per = 7 * time.Millisecond

	calls := 0
	slow := func(int) error { calls++; clk.advance(per); return nil }
	set, err := timing.NewSet(timing.Same("slow", slow))
	require.NoError(t, err)

	table, err := timing.Collect(set, mustSeq(t, func(n int) int { return n }, 1, 2, 1),
		timing.WithRepetitions(3), timing.WithClock(clk))
	require.NoError(t, err)

	col, err := table.Column("slow")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * per, 3 * per}, col, "totals are not divided by R")
	assert.Equal(t, 6, calls)

	perCall, err := table.PerCall("slow")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{per, per}, perCall)

	secs, err := table.Seconds("slow")
	require.NoError(t, err)
	assert.InDelta(t, 0.021, secs[0], 1e-12)
}

// TestCollect_ValidatorsNotTimed ensures validator work happens outside the
// measured region and that each candidate sees its own validated argument.
func TestCollect_ValidatorsNotTimed(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	var gotLen []int
	slowValidator := func(xs []int) []int {
		clk.advance(time.Hour)
		return append([]int(nil), xs[:len(xs)/2]...)
	}
	set, err := timing.NewSet(
		timing.Same("whole", func(xs []int) error { gotLen = append(gotLen, len(xs)); return nil }),
		timing.Func("half", func(xs []int) error { gotLen = append(gotLen, len(xs)); return nil }, slowValidator),
	)
	require.NoError(t, err)

	table, err := timing.Collect(set, mustSeq(t, rangeList, 4, 4, 1), timing.WithClock(clk))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2}, gotLen)
	row := table.Rows()[0]
	assert.Equal(t, []time.Duration{0, 0}, row.Elapsed)
}

// TestCollect_InvalidConfigurationBeforeGeneration verifies config errors
// fire before the generator runs even once.
func TestCollect_InvalidConfigurationBeforeGeneration(t *testing.T) {
	generated := 0
	gen := func(n int) int { generated++; return n }
	ok := timing.Same("ok", func(int) error { return nil })
	set, err := timing.NewSet(ok)
	require.NoError(t, err)

	_, err = timing.Collect[int](nil, mustSeq(t, gen, 0, 3, 1))
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "nil set")

	_, err = timing.Collect(set, mustSeq(t, gen, 0, 3, 1), timing.WithRepetitions(0))
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "zero repetitions")

	_, err = timing.Collect(set, nil)
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "nil sequencer")

	assert.Equal(t, 0, generated)

	_, err = timing.NewSet[int]()
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "empty set")
}

func TestNewSet_Names(t *testing.T) {
	noop := func(int) error { return nil }

	_, err := timing.NewSet(timing.Same("a", noop), timing.Same("a", noop))
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "duplicate")

	_, err = timing.NewSet(timing.Same("", noop))
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "empty name")

	_, err = timing.NewSet(timing.Candidate[int]{})
	assert.ErrorIs(t, err, timing.ErrInvalidConfiguration, "zero candidate")

	set, err := timing.NewSet(timing.Same("b", noop), timing.Same("a", noop))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, set.Names(), "insertion order kept")
	assert.Equal(t, 2, set.Len())
}

// TestCollect_CandidateErrorAborts checks the typed error and that no table
// is returned.
func TestCollect_CandidateErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	set, err := timing.NewSet(
		timing.Same("fine", func(int) error { return nil }),
		timing.Same("flaky", func(n int) error {
			calls++
			if n == 2 {
				return boom
			}
			return nil
		}),
	)
	require.NoError(t, err)

	table, err := timing.Collect(set, mustSeq(t, func(n int) int { return n }, 0, 5, 1), timing.WithRepetitions(2))
	assert.Nil(t, table)
	assert.ErrorIs(t, err, boom, "candidate error surfaces verbatim")

	var ce *timing.CandidateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "flaky", ce.Name)
	assert.Equal(t, 2, ce.Size)
	assert.Equal(t, 5, calls, "2 calls at size 0, 2 at size 1, 1 failing at size 2")
}

func TestCollect_Observer(t *testing.T) {
	var seen []int
	set, err := timing.NewSet(timing.Same("x", func(int) error { return nil }))
	require.NoError(t, err)

	table, err := timing.Collect(set, mustSeqRange(t, sizes.Range{Min: 0, Max: 10, Step: -5}),
		timing.WithObserver(func(r timing.Row) { seen = append(seen, r.Size) }))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 5, 0}, seen)
	assert.Equal(t, seen, table.Sizes())
}

func mustSeqRange(t *testing.T, r sizes.Range) *sizes.Sequencer[int] {
	t.Helper()
	seq, err := sizes.New(func(n int) int { return n }, r)
	require.NoError(t, err)

	return seq
}

package chart_test

import (
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/benchplot/chart"
	"github.com/katalvlaran/benchplot/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastSlow is the two-row, two-candidate table used across tests.
func fastSlow(t *testing.T, reps int) *timing.Table {
	t.Helper()
	table, err := timing.NewTable([]string{"fast", "slow"}, reps)
	require.NoError(t, err)
	require.NoError(t, table.Append(1, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}))
	require.NoError(t, table.Append(2, []time.Duration{300 * time.Millisecond, 400 * time.Millisecond}))

	return table
}

// TestBuild_SeriesPerCandidate checks line count, order, labels and values.
func TestBuild_SeriesPerCandidate(t *testing.T) {
	ch, err := chart.Build(fastSlow(t, 0), chart.Spec{Title: "sum", XLabel: "n"})
	require.NoError(t, err)

	require.Len(t, ch.Series, 2)
	assert.Equal(t, "fast", ch.Series[0].Name)
	assert.Equal(t, "slow", ch.Series[1].Name)
	for _, s := range ch.Series {
		assert.Equal(t, []float64{1, 2}, s.X)
	}
	assert.InDeltaSlice(t, []float64{0.1, 0.3}, ch.Series[0].Y, 1e-12)
	assert.InDeltaSlice(t, []float64{0.2, 0.4}, ch.Series[1].Y, 1e-12)

	assert.Equal(t, "sum", ch.Title)
	assert.Equal(t, "n", ch.XLabel, "no notes and unknown repetitions leave the base label alone")
	assert.Equal(t, chart.YLabel, ch.YLabel)
	assert.True(t, ch.Grid)
	assert.True(t, ch.Legend)
}

func TestBuild_XLabel(t *testing.T) {
	ch, err := chart.Build(fastSlow(t, 3), chart.Spec{XLabel: "n", Notes: []string{"m = 10", "k = 2"}})
	require.NoError(t, err)
	assert.Equal(t, "n\n\nm = 10\nk = 2\nrepetitions per size: 3", ch.XLabel, "table repetitions used as fallback")

	ch, err = chart.Build(fastSlow(t, 3), chart.Spec{XLabel: "n", Repetitions: 7})
	require.NoError(t, err)
	assert.Equal(t, "n\n\nrepetitions per size: 7", ch.XLabel, "explicit count overrides the table")

	ch, err = chart.Build(fastSlow(t, 0), chart.Spec{XLabel: "n", Notes: []string{"only note"}})
	require.NoError(t, err)
	assert.Equal(t, "n\n\nonly note", ch.XLabel)
}

func TestBuild_NilTable(t *testing.T) {
	_, err := chart.Build(nil, chart.Spec{})
	assert.ErrorIs(t, err, chart.ErrNilTable)
}

// TestRender_ShowThenSave verifies order, file naming and the PNG artifact.
func TestRender_ShowThenSave(t *testing.T) {
	dir := t.TempDir()
	var events []string
	var shown image.Image
	r := chart.NewRenderer(
		chart.WithOutputDir(dir),
		chart.WithDPI(40),
		chart.WithDisplayer(chart.DisplayFunc(func(title string, img image.Image) error {
			_, err := os.Stat(filepath.Join(dir, "timings.png"))
			if errors.Is(err, fs.ErrNotExist) {
				events = append(events, "show-before-save")
			}
			shown = img
			return nil
		})),
	)

	ch, err := r.Render(fastSlow(t, 2), chart.Spec{Title: "timings", XLabel: "n", Show: true, Save: true})
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, []string{"show-before-save"}, events)
	require.NotNil(t, shown)

	path := filepath.Join(dir, "timings.png")
	assert.Equal(t, path, r.Path("timings"))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	full := image.Rect(0, 0, int(6.4*40), int(4.8*40))
	assert.LessOrEqual(t, img.Bounds().Dx(), full.Dx()+1, "cropped image never exceeds the canvas")
	assert.LessOrEqual(t, img.Bounds().Dy(), full.Dy()+1)
	assert.Equal(t, shown.Bounds().Size(), img.Bounds().Size())
}

func TestRender_NoSideEffects(t *testing.T) {
	r := chart.NewRenderer(chart.WithDisplayer(chart.DisplayFunc(func(string, image.Image) error {
		t.Fatal("display must not be called")
		return nil
	})))
	ch, err := r.Render(fastSlow(t, 1), chart.Spec{Title: "quiet"})
	require.NoError(t, err)
	assert.Len(t, ch.Series, 2)
}

func TestRender_WriteFailure(t *testing.T) {
	r := chart.NewRenderer(chart.WithOutputDir(filepath.Join(t.TempDir(), "missing", "dir")), chart.WithDPI(20))
	ch, err := r.Render(fastSlow(t, 1), chart.Spec{Title: "x", Save: true})
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, chart.ErrWrite)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRender_DisplayFailure(t *testing.T) {
	boom := errors.New("no screen")
	r := chart.NewRenderer(chart.WithDPI(20), chart.WithDisplayer(chart.DisplayFunc(func(string, image.Image) error {
		return boom
	})))
	_, err := r.Render(fastSlow(t, 1), chart.Spec{Title: "x", Show: true})
	assert.ErrorIs(t, err, chart.ErrDisplay)
	assert.ErrorIs(t, err, boom)
}

func TestRender_SaveNeedsTitle(t *testing.T) {
	_, err := chart.NewRenderer().Render(fastSlow(t, 1), chart.Spec{Save: true})
	assert.ErrorIs(t, err, chart.ErrEmptyTitle)
}

// TestRender_EmptyTable renders axes only and is not an error.
func TestRender_EmptyTable(t *testing.T) {
	table, err := timing.NewTable([]string{"fast", "slow"}, 1)
	require.NoError(t, err)
	dir := t.TempDir()

	ch, err := chart.NewRenderer(chart.WithOutputDir(dir), chart.WithDPI(20)).
		Render(table, chart.Spec{Title: "empty", Save: true})
	require.NoError(t, err)
	require.Len(t, ch.Series, 2)
	assert.Empty(t, ch.Series[0].X)
	assert.FileExists(t, filepath.Join(dir, "empty.png"))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { chart.WithDPI(0) })
	assert.Panics(t, func() { chart.WithSize(0, 1) })
	assert.Panics(t, func() { chart.WithDisplayer(nil) })
	assert.Panics(t, func() { chart.WithLogger(nil) })
}

// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/benchplot/timing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// fileExt is the saved chart's extension.
const fileExt = ".png"

// Renderer draws Charts and performs the show/save side effects.
type Renderer struct {
	outDir        string
	dpi           int
	width, height vg.Length
	display       Displayer
	logger        *slog.Logger
}

// NewRenderer returns a Renderer with defaults overridden by opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		outDir:  DefaultOutputDir,
		dpi:     DefaultDPI,
		width:   DefaultWidth,
		height:  DefaultHeight,
		display: SystemViewer{},
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Path returns where a chart titled title is saved.
func (r *Renderer) Path(title string) string {
	return filepath.Join(r.outDir, title+fileExt)
}

// Render builds the chart for t and applies s's side effects.
// Implementation:
//   - Stage 1 (Build): describe the chart; a Save without title fails here.
//   - Stage 2 (Draw): rasterize and crop, skipped when neither side effect
//     is requested.
//   - Stage 3 (Show): hand the image to the Displayer.
//   - Stage 4 (Save): write <OutputDir>/<Title>.png.
//
// Any failure returns no Chart.
func (r *Renderer) Render(t *timing.Table, s Spec) (*Chart, error) {
	ch, err := Build(t, s)
	if err != nil {
		return nil, err
	}
	if s.Save && s.Title == "" {
		return nil, ErrEmptyTitle
	}
	if !s.Show && !s.Save {
		return ch, nil
	}

	img, err := r.Draw(ch)
	if err != nil {
		return nil, err
	}
	if s.Show {
		if err = r.display.Display(ch.Title, img); err != nil {
			return nil, fmt.Errorf("chart: show %q: %w: %w", ch.Title, ErrDisplay, err)
		}
	}
	if s.Save {
		path := r.Path(s.Title)
		if err = writePNG(path, img); err != nil {
			return nil, fmt.Errorf("chart: save %q: %w: %w", path, ErrWrite, err)
		}
		r.logger.Debug("chart saved", slog.String("path", path), slog.Int("dpi", r.dpi),
			slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
	}

	return ch, nil
}

// Draw rasterizes ch at the renderer's DPI and crops it to its content,
// keeping a margin of dpi/50 pixels.
func (r *Renderer) Draw(ch *Chart) (image.Image, error) {
	img, err := r.raster(ch)
	if err != nil {
		return nil, err
	}

	return cropToContent(img, r.dpi/50), nil
}

// raster draws ch onto a full width×height canvas at the renderer's DPI.
func (r *Renderer) raster(ch *Chart) (image.Image, error) {
	p, err := newPlot(ch)
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	p.Draw(draw.New(c))

	return c.Image(), nil
}

// newPlot maps a Chart onto a gonum plot.
func newPlot(ch *Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ch.Title
	p.X.Label.Text = ch.XLabel
	p.Y.Label.Text = ch.YLabel
	if ch.Grid {
		p.Add(plotter.NewGrid())
	}
	p.Legend.Top = true
	p.Legend.Left = true

	for i, s := range ch.Series {
		if len(s.X) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X, xys[j].Y = s.X[j], s.Y[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("chart: series %q: %w", s.Name, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(i)
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
		if ch.Legend {
			p.Legend.Add(s.Name, line)
		}
	}

	return p, nil
}

// cropToContent trims uniform background borders, keeping pad pixels of
// margin. A blank image is returned unchanged.
func cropToContent(img image.Image, pad int) image.Image {
	b := img.Bounds()
	bg := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y))
	content := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == bg {
				continue
			}
			content.Min.X = min(content.Min.X, x)
			content.Min.Y = min(content.Min.Y, y)
			content.Max.X = max(content.Max.X, x+1)
			content.Max.Y = max(content.Max.Y, y+1)
		}
	}
	if content.Empty() {
		return img
	}
	content = content.Inset(-pad).Intersect(b)
	sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	})
	if !ok {
		return img
	}

	return sub.SubImage(content)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

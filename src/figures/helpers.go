package figures

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// errPoints carries x/y values plus symmetric error magnitudes for
// plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func newErrPoints(xs, ys, errs []float64) *errPoints {
	pts := &errPoints{
		XYs:     make(plotter.XYs, len(xs)),
		YErrors: make(plotter.YErrors, len(xs)),
	}
	for i := range xs {
		pts.XYs[i] = plotter.XY{X: xs[i], Y: ys[i]}
		pts.YErrors[i].Low = errs[i]
		pts.YErrors[i].High = errs[i]
	}
	return pts
}

// addYErrorBars overlays black symmetric error bars at the given positions.
func addYErrorBars(p *plot.Plot, xs, ys, errs []float64) error {
	bars, err := plotter.NewYErrorBars(newErrPoints(xs, ys, errs))
	if err != nil {
		return fmt.Errorf("error bars: %w", err)
	}
	bars.LineStyle.Width = vg.Points(1.4)
	bars.LineStyle.Color = color.Black
	bars.CapWidth = vg.Points(5)
	p.Add(bars)
	return nil
}

// newBars builds one bar series with the manuscript's black outline.
func newBars(values []float64, width vg.Length, c color.Color, offset vg.Length) (*plotter.BarChart, error) {
	b, err := plotter.NewBarChart(plotter.Values(values), width)
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	b.Color = withAlpha(c, 0.85)
	b.LineStyle.Width = vg.Points(0.9)
	b.LineStyle.Color = color.Black
	b.Offset = offset
	return b, nil
}

func xysOf(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// indexXs returns 0..n-1 as float positions for nominal axes.
func indexXs(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// newScatter builds a scatter series with the given glyph.
func newScatter(xs, ys []float64, c color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xysOf(xs, ys))
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(4), Shape: shape}
	return s, nil
}

// newLine builds a styled line; dashes nil gives a solid line.
func newLine(pts plotter.XYs, c color.Color, width vg.Length, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	l.LineStyle.Dashes = dashes
	return l, nil
}

var dashed = []vg.Length{vg.Points(6), vg.Points(3)}
var dotted = []vg.Length{vg.Points(1.5), vg.Points(3)}

// funcPoints samples f over [x0, x1] with n points for overlay curves.
func funcPoints(f func(float64) float64, x0, x1 float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	step := (x1 - x0) / float64(n-1)
	for i := range pts {
		x := x0 + float64(i)*step
		pts[i] = plotter.XY{X: x, Y: f(x)}
	}
	return pts
}

// hLine is a horizontal reference line across [x0, x1] at height y.
func hLine(x0, x1, y float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	return newLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}}, c, vg.Points(2), dashes)
}

// vLine is a vertical reference line at x spanning [y0, y1].
func vLine(x, y0, y1 float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	return newLine(plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}}, c, vg.Points(2), dashes)
}

// newSpan shades the rectangle [x0,x1]×[y0,y1] (axvspan/axhspan equivalent).
func newSpan(x0, x1, y0, y1 float64, c color.Color, alpha float64) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
	if err != nil {
		return nil, fmt.Errorf("span: %w", err)
	}
	poly.Color = withAlpha(c, alpha)
	poly.LineStyle.Width = 0
	return poly, nil
}

// sprintCount formats a study/observation count annotation.
func sprintCount(n, obs float64) string {
	return fmt.Sprintf("n=%.0f (%.0f obs)", n, obs)
}

// reverse returns the points in reverse order (for closing band polygons).
func reverse(pts plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// polygonOf builds a filled polygon with no outline.
func polygonOf(pts plotter.XYs, c color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, fmt.Errorf("polygon: %w", err)
	}
	poly.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// addLabels places centered text annotations at the given positions.
func addLabels(p *plot.Plot, xs, ys []float64, texts []string, size vg.Length) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xysOf(xs, ys), Labels: texts})
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font = serif
		labels.TextStyle[i].Font.Size = size
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(labels)
	return nil
}

// savePlot writes a single-panel figure; format follows the extension.
func savePlot(p *plot.Plot, w, h vg.Length, path string) error {
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// savePanels lays several plots out in one row on a shared canvas, the
// equivalent of the original's multi-axes figures.
func savePanels(plots []*plot.Plot, panelW, panelH vg.Length, path string) error {
	cols := len(plots)
	totalW := panelW * vg.Length(cols)
	tiles := draw.Tiles{
		Rows: 1, Cols: cols,
		PadX:    vg.Points(20),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
	}
	grid := [][]*plot.Plot{plots}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		c := vgpdf.New(totalW, panelH)
		drawTiled(grid, tiles, draw.New(c))
		return writeCanvas(c, path)
	case ".png":
		c := vgimg.NewWith(vgimg.UseWH(totalW, panelH), vgimg.UseDPI(300))
		drawTiled(grid, tiles, draw.New(c))
		png := vgimg.PngCanvas{Canvas: c}
		return writeCanvas(png, path)
	case ".svg":
		c := vgsvg.New(totalW, panelH)
		drawTiled(grid, tiles, draw.New(c))
		return writeCanvas(c, path)
	default:
		return fmt.Errorf("unsupported figure format %q", filepath.Ext(path))
	}
}

func drawTiled(grid [][]*plot.Plot, tiles draw.Tiles, dc draw.Canvas) {
	canvases := plot.Align(grid, tiles, dc)
	for i, row := range grid {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
}

func writeCanvas(wt io.WriterTo, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

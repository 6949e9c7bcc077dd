package diagram

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderOptions style a flowchart rendering.
type RenderOptions struct {
	ClassColors map[string]color.Color
	ArrowColor  color.Color
	// Diagram extents in layout units.
	Width, Height float64
}

var arrowDashes = []vg.Length{vg.Points(5), vg.Points(3)}

// Render draws the flowchart onto a hidden-axis plot: one filled box with a
// centered white label per node, solid arrows for the main flow and a dashed
// curved arrow per feedback connection.
func Render(d *Diagram, opts RenderOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.HideAxes()
	p.X.Min, p.X.Max = 0, opts.Width
	p.Y.Min, p.Y.Max = 0, opts.Height

	for _, n := range d.Nodes() {
		c, ok := opts.ClassColors[n.Class]
		if !ok {
			return nil, fmt.Errorf("node %s: no color for class %q", n.ID, n.Class)
		}
		box, err := plotter.NewPolygon(plotter.XYs{
			{X: n.X, Y: n.Y}, {X: n.X + n.W, Y: n.Y},
			{X: n.X + n.W, Y: n.Y + n.H}, {X: n.X, Y: n.Y + n.H},
		})
		if err != nil {
			return nil, fmt.Errorf("node %s box: %w", n.ID, err)
		}
		box.Color = c
		box.LineStyle.Color = color.White
		box.LineStyle.Width = vg.Points(1.5)
		p.Add(box)

		cx, cy := n.Center()
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: cx, Y: cy}},
			Labels: []string{n.Label},
		})
		if err != nil {
			return nil, fmt.Errorf("node %s label: %w", n.ID, err)
		}
		labels.TextStyle[0].Color = color.White
		labels.TextStyle[0].Font.Size = vg.Points(9)
		labels.TextStyle[0].XAlign = draw.XCenter
		labels.TextStyle[0].YAlign = draw.YCenter
		p.Add(labels)
	}

	for _, a := range d.Arrows() {
		if err := renderArrow(p, d, a, opts.ArrowColor); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func renderArrow(p *plot.Plot, d *Diagram, a Arrow, c color.Color) error {
	from, err := d.Node(a.From)
	if err != nil {
		return err
	}
	to, err := d.Node(a.To)
	if err != nil {
		return err
	}

	var pts plotter.XYs
	if a.Dashed {
		// Feedback arrows swing out past the left edge of both boxes.
		fy := from.Y + from.H/2
		ty := to.Y + to.H/2
		ctrlX := math.Min(from.X, to.X) - 3
		pts = quadBezier(from.X, fy, ctrlX, (fy+ty)/2, to.X, ty, 40)
	} else {
		x0, y0, x1, y1 := anchors(from, to)
		pts = plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("arrow %s -> %s: %w", a.From, a.To, err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	if a.Dashed {
		line.LineStyle.Dashes = arrowDashes
	}
	p.Add(line)

	tip := pts[len(pts)-1]
	prev := pts[len(pts)-2]
	head, err := plotter.NewPolygon(arrowHead(tip.X, tip.Y, tip.X-prev.X, tip.Y-prev.Y, 0.22))
	if err != nil {
		return fmt.Errorf("arrow head %s -> %s: %w", a.From, a.To, err)
	}
	head.Color = c
	head.LineStyle.Width = 0
	p.Add(head)
	return nil
}

// anchors picks edge-midpoint connection points by relative position; the
// dominant layout direction is top-down.
func anchors(from, to Node) (x0, y0, x1, y1 float64) {
	fx, fy := from.Center()
	tx, ty := to.Center()
	switch {
	case ty < fy:
		return fx, from.Y, tx, to.Y + to.H
	case ty > fy:
		return fx, from.Y + from.H, tx, to.Y
	case tx > fx:
		return from.X + from.W, fy, to.X, ty
	default:
		return from.X, fy, to.X + to.W, ty
	}
}

// arrowHead is a small triangle at (x, y) pointing along (dx, dy).
func arrowHead(x, y, dx, dy, size float64) plotter.XYs {
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		norm = 1
	}
	ux, uy := dx/norm, dy/norm
	px, py := -uy, ux
	return plotter.XYs{
		{X: x, Y: y},
		{X: x - ux*size + px*size*0.5, Y: y - uy*size + py*size*0.5},
		{X: x - ux*size - px*size*0.5, Y: y - uy*size - py*size*0.5},
	}
}

// quadBezier samples a quadratic Bezier curve with n segments.
func quadBezier(x0, y0, cx, cy, x1, y1 float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pts[i] = plotter.XY{
			X: u*u*x0 + 2*u*t*cx + t*t*x1,
			Y: u*u*y0 + 2*u*t*cy + t*t*y1,
		}
	}
	return pts
}

// Package figures renders the twelve publication figures of the woodchip
// bioreactor review. Every figure embeds its literature dataset as literal
// constants, optionally fits an overlay curve, and writes exactly one
// artifact. Figures are independent: none reads another's output and order
// only affects narration.
package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	colors "gopkg.in/go-playground/colors.v1"
)

// Scientific palette carried over from the review manuscript.
var palette = []color.Color{
	hexColor("#2E86AB"),
	hexColor("#A23B72"),
	hexColor("#F18F01"),
	hexColor("#C73E1D"),
	hexColor("#6A994E"),
	hexColor("#F2CC8F"),
	hexColor("#81B29A"),
	hexColor("#3D405B"),
}

var serif = font.Font{Typeface: "Liberation", Variant: "Serif"}

func init() {
	// Serif text everywhere, matching the manuscript style.
	plot.DefaultFont = serif
	plotter.DefaultFont = serif
}

// hexColor parses a #RRGGBB literal. The palette is compiled in, so a bad
// literal is a programming error.
func hexColor(s string) color.Color {
	hc, err := colors.ParseHEX(s)
	if err != nil {
		panic(fmt.Sprintf("bad palette literal %q: %v", s, err))
	}
	rgba := hc.ToRGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 0xff}
}

// withAlpha returns c at the given opacity (0..1).
func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA64{
		R: uint16(r),
		G: uint16(g),
		B: uint16(b),
		A: uint16(a * 0xffff),
	}
}

// gridColor matches the original's grid alpha of 0.3.
var gridColor = color.NRGBA{A: 0x4c}

// newPlot builds a styled plot: serif fonts, low-opacity dashed grid,
// manuscript font sizes.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.Title.Padding = vg.Points(8)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.X.Tick.Label.Font.Size = vg.Points(11)
	p.Y.Tick.Label.Font.Size = vg.Points(11)
	p.Legend.TextStyle.Font.Size = vg.Points(10)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Color = gridColor
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)
	return p
}

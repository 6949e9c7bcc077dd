package figures

import (
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig07Slug = "fig7_phosphorus_scientific"

// Phosphorus removal efficiency by media type and operational phase. The
// woodchips-only startup value is negative: fresh chips leach phosphorus.
var phosphorusData = figdata.Dataset{
	Name: "phosphorus removal",
	Labels: []string{
		"Woodchips Only", "Woodchips + Iron Materials",
		"Woodchips + Steel Chips", "Woodchips + Fly Ash",
	},
	Cols: []figdata.Column{
		{Name: "startup", Values: []float64{-35, 25, 40, 68}},     // 0-6 months, %
		{Name: "startupErr", Values: []float64{5, 10, 8, 4}},
		{Name: "steady", Values: []float64{22, 50, 65, 75}},       // >12 months, %
		{Name: "steadyErr", Values: []float64{4, 10, 8, 4}},
		{Name: "studies", Values: []float64{15, 8, 10, 6}},
		{Name: "observations", Values: []float64{52, 24, 31, 18}},
	},
}

func renderPhosphorusRemoval(opts Options) error {
	defer TimeTrack(time.Now(), fig07Slug)
	if err := phosphorusData.Validate(); err != nil {
		return err
	}
	startup := phosphorusData.Col("startup")
	startupErr := phosphorusData.Col("startupErr")
	steady := phosphorusData.Col("steady")
	steadyErr := phosphorusData.Col("steadyErr")
	studies := phosphorusData.Col("studies")
	obs := phosphorusData.Col("observations")
	xs := indexXs(len(startup))

	p := newPlot("Phosphorus Removal Performance by Media Type and Operational Phase",
		"Bioreactor Media Type", "Phosphorus Removal Efficiency (%)")

	width := vg.Points(24)
	startupBars, err := newBars(startup, width, hexColor("#FF6B6B"), -width/2)
	if err != nil {
		return err
	}
	steadyBars, err := newBars(steady, width, hexColor("#4ECDC4"), width/2)
	if err != nil {
		return err
	}
	p.Add(startupBars, steadyBars)
	p.Legend.Add("Startup Phase (0-6 months)", startupBars)
	p.Legend.Add("Steady-state (>12 months)", steadyBars)
	p.Legend.Top = true
	p.Legend.Left = true

	leftXs := make([]float64, len(xs))
	rightXs := make([]float64, len(xs))
	for i, x := range xs {
		leftXs[i] = x - 0.16
		rightXs[i] = x + 0.16
	}
	if err := addYErrorBars(p, leftXs, startup, startupErr); err != nil {
		return err
	}
	if err := addYErrorBars(p, rightXs, steady, steadyErr); err != nil {
		return err
	}

	countLabels := make([]string, len(xs))
	countY := make([]float64, len(xs))
	for i := range xs {
		countLabels[i] = sprintCount(studies[i], obs[i])
		countY[i] = 85
	}
	if err := addLabels(p, xs, countY, countLabels, vg.Points(9)); err != nil {
		return err
	}

	// Emphasized zero line: below it the media releases phosphorus.
	zero, err := hLine(-0.5, float64(len(xs))-0.5, 0, hexColor("#3D405B"), nil)
	if err != nil {
		return err
	}
	p.Add(zero)
	if err := addLabels(p, []float64{-0.35}, []float64{2}, []string{"no removal"}, vg.Points(8)); err != nil {
		return err
	}

	p.NominalX(phosphorusData.Labels...)
	p.Y.Min, p.Y.Max = -50, 95

	return savePlot(p, 12*vg.Inch, 8*vg.Inch, opts.artifactPath(fig07Slug))
}

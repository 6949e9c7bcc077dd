package figures

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig01Slug = "fig1_removal_rates_scientific"

// Strategy-level summary of the enhancement review. Study counts reflect
// research maturity: carbon supplementation is the easiest to replicate in
// the laboratory, design modification needs field scale, and bioaugmentation
// needs specialized microbiology.
var removalRatesData = figdata.Dataset{
	Name: "removal rates by strategy",
	Labels: []string{
		"Control", "Bioaugmentation", "Media Modification", "Hydraulic Optimization",
		"Mixed Media", "Design Modification", "Alternative Media", "Carbon Supplementation",
	},
	Cols: []figdata.Column{
		{Name: "rate", Values: []float64{8.0, 7.0, 9.0, 10.0, 12.0, 15.0, 22.0, 28.0}},
		{Name: "stddev", Values: []float64{2.5, 1.8, 2.2, 2.8, 3.0, 4.5, 6.0, 8.5}},
		{Name: "studies", Values: []float64{9, 7, 9, 9, 8, 7, 9, 12}},
		{Name: "observations", Values: []float64{9, 7, 9, 9, 8, 7, 9, 10}},
	},
}

// Assumed split between laboratory and field observations (65% lab, 35% field).
const labShare = 0.65

func renderRemovalRates(opts Options) error {
	defer TimeTrack(time.Now(), fig01Slug)
	if err := removalRatesData.Validate(); err != nil {
		return err
	}
	rates := removalRatesData.Col("rate")
	stddev := removalRatesData.Col("stddev")
	studies := removalRatesData.Col("studies")
	obs := removalRatesData.Col("observations")

	lab := make([]float64, len(rates))
	field := make([]float64, len(rates))
	for i, r := range rates {
		lab[i] = r * labShare
		field[i] = r * (1 - labShare)
	}

	p := newPlot("Nitrate Removal Rates by Enhancement Strategy (Lab vs. Field)",
		"Enhancement Strategy", "Nitrate Removal Rate (g N m⁻³ d⁻¹)")

	labBars, err := newBars(lab, vg.Points(26), palette[0], 0)
	if err != nil {
		return fmt.Errorf("lab bars: %w", err)
	}
	fieldBars, err := newBars(field, vg.Points(26), palette[4], 0)
	if err != nil {
		return fmt.Errorf("field bars: %w", err)
	}
	fieldBars.StackOn(labBars)
	p.Add(labBars, fieldBars)
	p.Legend.Add("Laboratory", labBars)
	p.Legend.Add("Field", fieldBars)
	p.Legend.Top = true
	p.Legend.Left = true

	xs := indexXs(len(rates))
	if err := addYErrorBars(p, xs, rates, stddev); err != nil {
		return err
	}

	counts := make([]string, len(rates))
	labelY := make([]float64, len(rates))
	for i := range rates {
		counts[i] = fmt.Sprintf("n = %.0f (%.0f obs)", studies[i], obs[i])
		labelY[i] = rates[i] + stddev[i] + 1.5
	}
	if err := addLabels(p, xs, labelY, counts, vg.Points(9)); err != nil {
		return err
	}

	p.NominalX(removalRatesData.Labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop
	p.Y.Min, p.Y.Max = 0, 45

	return savePlot(p, 12*vg.Inch, 8*vg.Inch, opts.artifactPath(fig01Slug))
}

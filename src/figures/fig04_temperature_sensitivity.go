package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig04Slug = "fig4_temperature_scientific"

// Q10 coefficients by woodchip condition and operating mode.
var temperatureSensitivityData = figdata.Dataset{
	Name: "temperature sensitivity",
	Labels: []string{
		"Fresh Woodchips (Continuous)", "Aged Woodchips (>3 years)",
		"Continuously Saturated", "After Drying-Rewetting",
	},
	Cols: []figdata.Column{
		{Name: "q10", Values: []float64{2.1, 3.0, 1.8, 2.4}},
		{Name: "q10Err", Values: []float64{0.15, 0.12, 0.08, 0.11}},
	},
}

func renderTemperatureSensitivity(opts Options) error {
	defer TimeTrack(time.Now(), fig04Slug)
	if err := temperatureSensitivityData.Validate(); err != nil {
		return err
	}
	q10 := temperatureSensitivityData.Col("q10")
	q10Err := temperatureSensitivityData.Col("q10Err")
	xs := indexXs(len(q10))

	p := newPlot("Temperature Sensitivity (Q₁₀ Values)",
		"Woodchip Condition and Operating Mode", "Temperature Sensitivity (Q₁₀)")

	barColors := []string{"#264653", "#2A9D8F", "#E9C46A", "#F4A261"}
	for i, v := range q10 {
		single := make([]float64, len(q10))
		single[i] = v
		bars, err := newBars(single, vg.Points(40), hexColor(barColors[i]), 0)
		if err != nil {
			return err
		}
		p.Add(bars)
	}
	if err := addYErrorBars(p, xs, q10, q10Err); err != nil {
		return err
	}

	ref, err := hLine(-0.5, float64(len(q10))-0.5, 2.0, hexColor("#C73E1D"), dashed)
	if err != nil {
		return err
	}
	p.Add(ref)
	p.Legend.Add("Typical Q₁₀ = 2.0", ref)
	p.Legend.Top = true

	valueLabels := make([]string, len(q10))
	labelY := make([]float64, len(q10))
	for i, v := range q10 {
		valueLabels[i] = fmt.Sprintf("%.1f", v)
		labelY[i] = v + q10Err[i] + 0.08
	}
	if err := addLabels(p, xs, labelY, valueLabels, vg.Points(11)); err != nil {
		return err
	}

	p.NominalX(temperatureSensitivityData.Labels...)
	p.Y.Min, p.Y.Max = 0, 3.4

	return savePlot(p, 12*vg.Inch, 8*vg.Inch, opts.artifactPath(fig04Slug))
}

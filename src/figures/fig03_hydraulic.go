package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig03Slug = "fig3_hydraulic_performance_scientific"

// Field bioreactor hydraulic performance under methanol dosing
// (bioreactors_comp techno-operational records, 2018-2021).
var hydraulicData = figdata.Dataset{
	Name:   "hydraulic performance",
	Labels: []string{"2018 (no carbon)", "2020 (first year dosing)", "2021 (second year dosing)"},
	Cols: []figdata.Column{
		{Name: "conductivity", Values: []float64{4601, 2800, 1600}}, // m/day
		{Name: "conductivityErr", Values: []float64{460, 280, 160}}, // estimated ±10%
		{Name: "methanol", Values: []float64{0, 10, 5}},             // mL/min
	},
}

func renderHydraulicPerformance(opts Options) error {
	defer TimeTrack(time.Now(), fig03Slug)
	if err := hydraulicData.Validate(); err != nil {
		return err
	}
	conductivity := hydraulicData.Col("conductivity")
	conductivityErr := hydraulicData.Col("conductivityErr")
	methanol := hydraulicData.Col("methanol")
	xs := indexXs(len(hydraulicData.Labels))

	left := newPlot("Impact of Carbon Dosing on Hydraulic Performance",
		"Year and Carbon Dosing Status", "Hydraulic Conductivity (m d⁻¹)")
	condColors := []int{0, 2, 3}
	for i, v := range conductivity {
		single := make([]float64, len(conductivity))
		single[i] = v
		bars, err := newBars(single, vg.Points(34), palette[condColors[i]], 0)
		if err != nil {
			return err
		}
		left.Add(bars)
	}
	if err := addYErrorBars(left, xs, conductivity, conductivityErr); err != nil {
		return err
	}
	condLabels := make([]string, len(conductivity))
	condLabelY := make([]float64, len(conductivity))
	for i, v := range conductivity {
		condLabels[i] = fmt.Sprintf("%.0f m/day", v)
		condLabelY[i] = v + conductivityErr[i] + 200
	}
	if err := addLabels(left, xs, condLabelY, condLabels, vg.Points(9)); err != nil {
		return err
	}
	left.NominalX("2018", "2020", "2021")
	left.Y.Min, left.Y.Max = 0, 6000

	right := newPlot("Carbon Dosing Strategy Over Time", "Year", "Methanol Dosing Rate (mL min⁻¹)")
	doseBars, err := newBars(methanol, vg.Points(34), hexColor("#FF6B6B"), 0)
	if err != nil {
		return err
	}
	right.Add(doseBars)
	doseLabels := make([]string, len(methanol))
	doseLabelY := make([]float64, len(methanol))
	for i, v := range methanol {
		if v > 0 {
			doseLabels[i] = fmt.Sprintf("%.0f mL/min methanol", v)
			doseLabelY[i] = v + 0.3
		} else {
			doseLabels[i] = "no carbon dosing"
			doseLabelY[i] = 0.5
		}
	}
	if err := addLabels(right, xs, doseLabelY, doseLabels, vg.Points(9)); err != nil {
		return err
	}
	right.NominalX("2018", "2020", "2021")
	right.Y.Min, right.Y.Max = 0, 12

	return savePanels([]*plot.Plot{left, right}, 7*vg.Inch, 6*vg.Inch, opts.artifactPath(fig03Slug))
}

package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig09Slug = "fig9_wood_species_comparison_scientific"

// Wood species performance. N₂O production is relative to commercial
// hardwood (=1.0).
var woodSpeciesData = figdata.Dataset{
	Name:   "wood species comparison",
	Labels: []string{"Commercial Hardwood", "EAB-killed Ash", "High-tannin Oak"},
	Cols: []figdata.Column{
		{Name: "removal", Values: []float64{12.5, 12.8, 15.2}}, // g N/m³/day
		{Name: "removalErr", Values: []float64{1.5, 1.8, 2.0}},
		{Name: "n2o", Values: []float64{1.0, 0.7, 1.2}},
		{Name: "n2oErr", Values: []float64{0.1, 0.08, 0.15}},
		{Name: "pLeaching", Values: []float64{2.5, 2.2, 3.1}}, // mg/L
		{Name: "pLeachingErr", Values: []float64{0.3, 0.25, 0.4}},
	},
}

var woodSpeciesColors = []string{"#264653", "#2A9D8F", "#E9C46A"}

func renderWoodSpecies(opts Options) error {
	defer TimeTrack(time.Now(), fig09Slug)
	if err := woodSpeciesData.Validate(); err != nil {
		return err
	}

	removalPanel, err := speciesPanel("Nitrate Removal Performance",
		"Nitrate Removal Rate (g N m⁻³ d⁻¹)", "removal", "removalErr", 18, "%.1f")
	if err != nil {
		return err
	}

	n2oPanel, err := speciesPanel("Greenhouse Gas Emissions",
		"N₂O Production (Relative to Commercial)", "n2o", "n2oErr", 1.5, "%.1f")
	if err != nil {
		return err
	}
	baseline, err := hLine(-0.5, 2.5, 1.0, hexColor("#C73E1D"), dashed)
	if err != nil {
		return err
	}
	n2oPanel.Add(baseline)
	n2oPanel.Legend.Add("Commercial baseline", baseline)
	n2oPanel.Legend.Top = true

	pPanel, err := speciesPanel("Phosphorus Leaching",
		"Dissolved P Leaching (mg L⁻¹)", "pLeaching", "pLeachingErr", 4, "%.1f")
	if err != nil {
		return err
	}

	return savePanels([]*plot.Plot{removalPanel, n2oPanel, pPanel},
		5.4*vg.Inch, 6*vg.Inch, opts.artifactPath(fig09Slug))
}

func speciesPanel(title, ylabel, col, errCol string, ymax float64, valueFmt string) (*plot.Plot, error) {
	values := woodSpeciesData.Col(col)
	errs := woodSpeciesData.Col(errCol)
	xs := indexXs(len(values))

	p := newPlot(title, "", ylabel)
	for i, v := range values {
		single := make([]float64, len(values))
		single[i] = v
		bars, err := newBars(single, vg.Points(34), hexColor(woodSpeciesColors[i]), 0)
		if err != nil {
			return nil, err
		}
		p.Add(bars)
	}
	if err := addYErrorBars(p, xs, values, errs); err != nil {
		return nil, err
	}

	labels := make([]string, len(values))
	labelY := make([]float64, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf(valueFmt, v)
		labelY[i] = v + errs[i] + ymax*0.02
	}
	if err := addLabels(p, xs, labelY, labels, vg.Points(10)); err != nil {
		return nil, err
	}

	p.NominalX(woodSpeciesData.Labels...)
	p.Y.Min, p.Y.Max = 0, ymax
	return p, nil
}

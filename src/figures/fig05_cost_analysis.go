package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/costindex"
	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
)

const fig05Slug = "fig5_cost_analysis"

// costScenario carries raw literature costs with their source years. Raw
// values are never plotted: each one is standardized to 2023 USD via its
// source-year deflator first.
type costScenario struct {
	name  string
	hex   string
	raw   []float64 // $ per kg NO3-N removed, source-year dollars
	years []int
}

var costConfigurations = []string{
	"Traditional Subsurface", "Cistern Pumped", "Surface Water Pumped", "Drainage Ditch Pumped",
}

// Techno-economic analysis costs. The 86 $/kg drainage-ditch worst case is
// the revised 2024 literature value.
var costScenarios = []costScenario{
	{"Best Case Scenario", "#2A9D8F", []float64{3, 5, 5, 8}, []int{2023, 2023, 2022, 2022}},
	{"Typical Scenario", "#F4A261", []float64{8, 15, 16, 20}, []int{2021, 2021, 2021, 2021}},
	{"Worst Case Scenario", "#E76F51", []float64{15, 27, 27, 86}, []int{2018, 2018, 2020, 2024}},
}

func renderCostAnalysis(opts Options) error {
	defer TimeTrack(time.Now(), fig05Slug)

	p := newPlot("Economic Analysis of Different Bioreactor Configurations (2023 USD)",
		"Bioreactor Configuration", fmt.Sprintf("Unit Cost (%d $ kg⁻¹ NO₃-N removed)", costindex.ReferenceYear))

	width := vg.Points(22)
	offsets := []vg.Length{-width, 0, width}
	xs := indexXs(len(costConfigurations))

	for si, s := range costScenarios {
		if err := figdata.Aligned(s.name, len(costConfigurations), len(s.raw), len(s.years)); err != nil {
			return err
		}
		standardized, err := costindex.StandardizeSeries(s.raw, s.years)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		bars, err := newBars(standardized, width, hexColor(s.hex), offsets[si])
		if err != nil {
			return err
		}
		p.Add(bars)
		p.Legend.Add(s.name, bars)

		labels := make([]string, len(standardized))
		labelY := make([]float64, len(standardized))
		labelX := make([]float64, len(standardized))
		for i, v := range standardized {
			labels[i] = fmt.Sprintf("$%.1f", v)
			labelY[i] = v + 1
			labelX[i] = xs[i] + float64(si-1)*0.28
		}
		if err := addLabels(p, labelX, labelY, labels, vg.Points(8)); err != nil {
			return err
		}
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.NominalX(costConfigurations...)
	p.Y.Min, p.Y.Max = 0, 100

	return savePlot(p, 12*vg.Inch, 8*vg.Inch, opts.artifactPath(fig05Slug))
}

package figures

import (
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bioreactorlab/WoodchipFigures/src/diagram"
)

const fig12Slug = "fig12_decision_framework_scientific"

var frameworkClassColors = map[string]color.Color{
	"start":          hexColor("#1E3A8A"),
	"assessment":     hexColor("#3B82F6"),
	"decision":       hexColor("#10B981"),
	"strategy":       hexColor("#F59E0B"),
	"implementation": hexColor("#EF4444"),
	"outcome":        hexColor("#6B7280"),
}

// Legend order and display names for the box classes.
var frameworkLegend = []struct{ class, name string }{
	{"start", "Start/End"},
	{"assessment", "Assessment"},
	{"decision", "Climate Strategies"},
	{"strategy", "Loading Strategies"},
	{"implementation", "Implementation"},
	{"outcome", "Targets"},
}

// buildDecisionFramework assembles the strategy-selection flowchart. Layout
// coordinates are in diagram units on a 14×16 canvas, top-down flow.
func buildDecisionFramework() (*diagram.Diagram, error) {
	d := diagram.New("Decision Framework for Bioreactor Enhancement Strategy Selection")

	nodes := []diagram.Node{
		{ID: "site", Class: "start", X: 5, Y: 14, W: 4, H: 0.8,
			Label: "SITE ASSESSMENT\n& CHARACTERIZATION"},
		{ID: "temperature", Class: "assessment", X: 1, Y: 12.2, W: 3.5, H: 1.2,
			Label: "TEMPERATURE\nREGIME\nASSESSMENT"},
		{ID: "loading", Class: "assessment", X: 5.25, Y: 12.2, W: 3.5, H: 1.2,
			Label: "NITRATE LOADING\nCHARACTERISTICS"},
		{ID: "constraints", Class: "assessment", X: 9.5, Y: 12.2, W: 3.5, H: 1.2,
			Label: "BUDGET &\nCONSTRAINTS"},
		{ID: "cold", Class: "decision", X: 0.5, Y: 9.8, W: 4, H: 1.8,
			Label: "COLD CLIMATE (<10°C)\nCarbon supplementation\nBioaugmentation\nDRW cycles"},
		{ID: "moderate", Class: "decision", X: 5, Y: 9.8, W: 4, H: 1.8,
			Label: "MODERATE CLIMATE (10-20°C)\nAlternative media\nHydraulic optimization\nMixed systems"},
		{ID: "warm", Class: "decision", X: 9.5, Y: 9.8, W: 4, H: 1.8,
			Label: "WARM CLIMATE (>20°C)\nStandard design\nGHG control\nCost optimization"},
		{ID: "highload", Class: "strategy", X: 2, Y: 7.2, W: 4.5, H: 1.5,
			Label: "HIGH LOADING (>30 mg/L)\nEnhanced carbon addition\nAlternative media"},
		{ID: "lowload", Class: "strategy", X: 7.5, Y: 7.2, W: 4.5, H: 1.5,
			Label: "LOW LOADING (<10 mg/L)\nHRT optimization\nEfficiency focus"},
		{ID: "implementation", Class: "implementation", X: 3, Y: 4.8, W: 8, H: 1.8,
			Label: "IMPLEMENTATION PHASE\nMonitoring protocols\nMaintenance scheduling\nRegulatory compliance"},
		{ID: "targets", Class: "outcome", X: 2, Y: 2.5, W: 10, H: 1.5,
			Label: "PERFORMANCE TARGETS\nRemoval rate: 15-30 g N/m³/d, Efficiency: >80%\nN₂O emissions: <1%, DOC: <15 mg/L"},
		{ID: "monitoring", Class: "start", X: 4, Y: 0.5, W: 6, H: 1.2,
			Label: "MONITORING &\nOPTIMIZATION"},
	}
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			return nil, err
		}
	}

	flow := [][2]string{
		{"site", "temperature"}, {"site", "loading"}, {"site", "constraints"},
		{"temperature", "cold"}, {"loading", "moderate"}, {"constraints", "warm"},
		{"loading", "highload"}, {"loading", "lowload"},
		{"cold", "implementation"}, {"moderate", "implementation"}, {"warm", "implementation"},
		{"highload", "implementation"}, {"lowload", "implementation"},
		{"implementation", "targets"}, {"targets", "monitoring"},
	}
	for _, e := range flow {
		if err := d.AddArrow(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	// Adaptive management loop back to the site assessment.
	if err := d.AddFeedback("monitoring", "site"); err != nil {
		return nil, err
	}
	return d, nil
}

func renderDecisionFramework(opts Options) error {
	defer TimeTrack(time.Now(), fig12Slug)

	d, err := buildDecisionFramework()
	if err != nil {
		return fmt.Errorf("build framework: %w", err)
	}
	p, err := diagram.Render(d, diagram.RenderOptions{
		ClassColors: frameworkClassColors,
		ArrowColor:  hexColor("#374151"),
		Width:       14,
		Height:      16,
	})
	if err != nil {
		return fmt.Errorf("render framework: %w", err)
	}

	for _, e := range frameworkLegend {
		swatch, err := plotter.NewPolygon(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
		if err != nil {
			return err
		}
		swatch.Color = frameworkClassColors[e.class]
		p.Legend.Add(e.name, swatch)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := addLabels(p, []float64{1.3}, []float64{7.4}, []string{"Adaptive\nManagement\nFeedback"}, vg.Points(8)); err != nil {
		return err
	}

	return savePlot(p, 12*vg.Inch, 14*vg.Inch, opts.artifactPath(fig12Slug))
}

package figures

import (
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
	"github.com/bioreactorlab/WoodchipFigures/src/tempmodel"
)

const fig10Slug = "fig10_temperature_modeling_scientific"

// Modeled temperatures and the experimental literature points the models are
// judged against.
var modelTemps = []float64{4, 8, 12, 16, 20, 24, 28, 30}

var nitrateExpTemps = []float64{4, 12, 20, 30}
var nitrateExpRates = []float64{3.2, 6.5, 8.0, 12.8}
var nitrateExpErrs = []float64{0.5, 0.8, 1.0, 1.5}

var docExpTemps = []float64{4, 12, 20, 30}
var docExpValues = []float64{8.2, 12.8, 15.0, 22.1}

func renderTemperatureModeling(opts Options) error {
	defer TimeTrack(time.Now(), fig10Slug)
	if err := figdata.Aligned("nitrate experimental", len(nitrateExpTemps),
		len(nitrateExpRates), len(nitrateExpErrs)); err != nil {
		return err
	}
	if err := figdata.Aligned("DOC experimental", len(docExpTemps), len(docExpValues)); err != nil {
		return err
	}

	left := newPlot("Temperature Dependence of Nitrate Removal",
		"Temperature (°C)", "Nitrate Removal Rate (g N m⁻³ d⁻¹)")
	model, err := newLine(xysOf(modelTemps, tempmodel.NitrateRemoval.Series(modelTemps)),
		hexColor("#2E86AB"), vg.Points(3), nil)
	if err != nil {
		return err
	}
	left.Add(model)
	left.Legend.Add("Arrhenius model (θ = 1.16)", model)

	expPts, err := newScatter(nitrateExpTemps, nitrateExpRates, hexColor("#E63946"), draw.CircleGlyph{})
	if err != nil {
		return err
	}
	left.Add(expPts)
	left.Legend.Add("Experimental data", expPts)
	if err := addYErrorBars(left, nitrateExpTemps, nitrateExpRates, nitrateExpErrs); err != nil {
		return err
	}
	left.Legend.Top = true
	left.Legend.Left = true
	if err := addLabels(left, []float64{6}, []float64{13.6}, []string{"R² = 0.45 (45% variance explained)"}, vg.Points(9)); err != nil {
		return err
	}
	left.X.Min, left.X.Max = 0, 32
	left.Y.Min, left.Y.Max = 0, 15

	right := newPlot("Temperature Dependence of DOC Production",
		"Temperature (°C)", "DOC Production (mg C L⁻¹)")
	docModel, err := newLine(xysOf(modelTemps, tempmodel.DOCProduction.Series(modelTemps)),
		hexColor("#6A994E"), vg.Points(3), nil)
	if err != nil {
		return err
	}
	right.Add(docModel)
	right.Legend.Add("DOC production model (θ = 1.12)", docModel)

	docPts, err := newScatter(docExpTemps, docExpValues, hexColor("#F18F01"), draw.BoxGlyph{})
	if err != nil {
		return err
	}
	right.Add(docPts)
	right.Legend.Add("Experimental DOC data", docPts)
	right.Legend.Top = true
	right.Legend.Left = true
	if err := addLabels(right, []float64{6}, []float64{22.8}, []string{"R² = 0.40 (40% variance explained)"}, vg.Points(9)); err != nil {
		return err
	}
	right.X.Min, right.X.Max = 0, 32
	right.Y.Min, right.Y.Max = 0, 25

	return savePanels([]*plot.Plot{left, right}, 7*vg.Inch, 6*vg.Inch, opts.artifactPath(fig10Slug))
}

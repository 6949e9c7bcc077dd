package figures

import (
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
	"github.com/bioreactorlab/WoodchipFigures/src/fitkit"
)

const fig06Slug = "fig6_greenhouse_gas_scientific"

// Emissions as % of removed N across hydraulic retention times. N₂O series
// after Davis et al. 2019; CH₄ trend compiled across studies. Errors are 10%
// of the measured value.
var ghgHRTHours = []float64{2, 4, 6, 8, 12, 16, 20, 24, 30}
var ghgN2O = []float64{1.20, 0.90, 0.70, 0.51, 0.30, 0.25, 0.30, 0.40, 0.50}
var ghgN2OErr = []float64{0.12, 0.09, 0.07, 0.05, 0.03, 0.03, 0.03, 0.04, 0.05}
var ghgCH4 = []float64{0.02, 0.03, 0.04, 0.06, 0.12, 0.28, 0.45, 0.68, 0.95}
var ghgCH4Err = []float64{0.002, 0.003, 0.004, 0.006, 0.012, 0.028, 0.045, 0.068, 0.095}

// Optimal HRT window highlighted in both panels.
const optimalHRTLow, optimalHRTHigh = 8.0, 16.0

func renderGreenhouseGas(opts Options) error {
	defer TimeTrack(time.Now(), fig06Slug)
	if err := figdata.Aligned("greenhouse gas", len(ghgHRTHours),
		len(ghgN2O), len(ghgN2OErr), len(ghgCH4), len(ghgCH4Err)); err != nil {
		return err
	}

	left, err := ghgPanel("Nitrous Oxide Emissions vs. HRT", "N₂O Emissions (% of removed N)",
		ghgN2O, ghgN2OErr, hexColor("#E63946"), draw.CircleGlyph{}, 1.4)
	if err != nil {
		return err
	}
	// Cubic polynomial trend for the N₂O minimum.
	if _, curve, err := fitkit.Polynomial(ghgHRTHours, ghgN2O, 3); err != nil {
		Warnf("%s: N₂O polynomial trend skipped: %v", fig06Slug, err)
	} else {
		trend, err := newLine(funcPoints(curve, 2, 30, 100), hexColor("#C73E1D"), vg.Points(2), dashed)
		if err != nil {
			return err
		}
		left.Add(trend)
	}

	right, err := ghgPanel("Methane Emissions vs. HRT", "CH₄ Emissions (% of removed N)",
		ghgCH4, ghgCH4Err, hexColor("#457B9D"), draw.BoxGlyph{}, 1.1)
	if err != nil {
		return err
	}
	// CH₄ rises exponentially with retention time.
	if _, curve, err := fitkit.Exponential(ghgHRTHours, ghgCH4, [3]float64{0.01, 0.1, 0}); err != nil {
		Warnf("%s: CH₄ exponential trend skipped: %v", fig06Slug, err)
	} else {
		trend, err := newLine(funcPoints(curve, 2, 30, 100), hexColor("#2E86AB"), vg.Points(2), dashed)
		if err != nil {
			return err
		}
		right.Add(trend)
	}

	return savePanels([]*plot.Plot{left, right}, 7.5*vg.Inch, 7*vg.Inch, opts.artifactPath(fig06Slug))
}

func ghgPanel(title, ylabel string, values, errs []float64, c color.Color, glyph draw.GlyphDrawer, ymax float64) (*plot.Plot, error) {
	p := newPlot(title, "Hydraulic Retention Time (h)", ylabel)

	span, err := newSpan(optimalHRTLow, optimalHRTHigh, 0, ymax, hexColor("#6A994E"), 0.2)
	if err != nil {
		return nil, err
	}
	p.Add(span)
	p.Legend.Add("Optimal HRT Range", span)

	line, err := newLine(xysOf(ghgHRTHours, values), c, vg.Points(2.5), nil)
	if err != nil {
		return nil, err
	}
	pts, err := newScatter(ghgHRTHours, values, c, glyph)
	if err != nil {
		return nil, err
	}
	p.Add(line, pts)
	if err := addYErrorBars(p, ghgHRTHours, values, errs); err != nil {
		return nil, err
	}

	p.X.Min, p.X.Max = 0, 32
	p.Y.Min, p.Y.Max = 0, ymax
	return p, nil
}

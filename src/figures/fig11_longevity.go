package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
	"github.com/bioreactorlab/WoodchipFigures/src/fitkit"
)

const fig11Slug = "fig11_longevity_scientific"

// Removal rate against bed age across long-running installations. Rates
// decline as the labile carbon fraction is consumed, then level off on the
// refractory fraction.
var longevityAges = []float64{0.5, 1, 2, 3, 4, 5, 7, 9}   // years
var longevityRates = []float64{14.5, 12.3, 10.4, 9.2, 8.4, 7.8, 6.9, 6.3} // g N/m³/day
var longevityErrs = []float64{1.6, 1.4, 1.2, 1.0, 0.9, 0.9, 0.8, 0.8}

func renderLongevity(opts Options) error {
	defer TimeTrack(time.Now(), fig11Slug)
	if err := figdata.Aligned("longevity", len(longevityAges),
		len(longevityRates), len(longevityErrs)); err != nil {
		return err
	}

	p := newPlot("Nitrate Removal Rate Over Bioreactor Age",
		"Bed Age (years)", "Nitrate Removal Rate (g N m⁻³ d⁻¹)")

	pts, err := newScatter(longevityAges, longevityRates, hexColor("#A23B72"), draw.CircleGlyph{})
	if err != nil {
		return err
	}
	p.Add(pts)
	p.Legend.Add(fmt.Sprintf("Literature installations (n=%d)", len(longevityAges)), pts)
	if err := addYErrorBars(p, longevityAges, longevityRates, longevityErrs); err != nil {
		return err
	}

	if params, curve, err := fitkit.PowerLaw(longevityAges, longevityRates, [3]float64{12, -0.4, 4}); err != nil {
		Warnf("%s: ageing trend skipped: %v", fig11Slug, err)
	} else {
		trend, err := newLine(funcPoints(curve, 0.4, 10, 100), hexColor("#3D405B"), vg.Points(2.5), dashed)
		if err != nil {
			return err
		}
		p.Add(trend)
		p.Legend.Add(fmt.Sprintf("Ageing trend: y = %.1fx^%.2f + %.1f", params[0], params[1], params[2]), trend)
	}

	// Nominal media replacement horizon.
	life, err := vLine(10, 0, 16, hexColor("#C73E1D"), dotted)
	if err != nil {
		return err
	}
	p.Add(life)
	p.Legend.Add("Typical design life (10 y)", life)

	p.Legend.Top = true
	p.X.Min, p.X.Max = 0, 10.5
	p.Y.Min, p.Y.Max = 0, 16

	return savePlot(p, 11*vg.Inch, 8*vg.Inch, opts.artifactPath(fig11Slug))
}

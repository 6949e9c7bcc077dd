package figures

import (
	"fmt"
	"time"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bioreactorlab/WoodchipFigures/src/figdata"
	"github.com/bioreactorlab/WoodchipFigures/src/fitkit"
)

const fig02Slug = "fig2_rate_efficiency_scientific"

// scaleGroup is one experimental scale's rate/efficiency point cloud.
type scaleGroup struct {
	name       string
	rates      []float64 // g N m⁻³ d⁻¹
	efficiency []float64 // %
}

type rateEfficiencyDataset struct {
	lab, pilot, field scaleGroup
}

// Per-study rate/efficiency pairs compiled from the review.
var rateEfficiencyData = rateEfficiencyDataset{
	lab: scaleGroup{
		name: "Laboratory",
		rates: []float64{19.8, 15.0, 7.4, 6.2, 38.0, 8.2, 14.2, 8.8, 7.4, 8.8,
			9.3, 11.0, 7.8, 47.6, 8.5, 18.2, 9.0, 7.7, 9.0, 18.6, 12.0, 10.5},
		efficiency: []float64{80, 50, 60, 55, 93, 58, 61, 68, 58, 52,
			62, 60, 45, 65, 45, 72, 40, 50, 55, 73, 60, 61},
	},
	pilot: scaleGroup{
		name:       "Pilot-scale",
		rates:      []float64{10.5, 8.4, 12.5, 7.0, 8.5, 7.5, 14.5},
		efficiency: []float64{43, 41, 48, 45, 32, 50, 51},
	},
	field: scaleGroup{
		name:       "Field-scale",
		rates:      []float64{8.6, 5.1, 12.0, 6.0, 5.8, 4.4, 7.8, 3.0},
		efficiency: []float64{85, 20, 95, 60, 40, 30, 45, 30},
	},
}

func (g scaleGroup) check() error {
	return figdata.Aligned(g.name, len(g.rates), len(g.efficiency))
}

func renderRateEfficiency(opts Options) error {
	defer TimeTrack(time.Now(), fig02Slug)
	return rateEfficiencyFigure(rateEfficiencyData, opts.artifactPath(fig02Slug))
}

func rateEfficiencyFigure(data rateEfficiencyDataset, path string) error {
	for _, g := range []scaleGroup{data.lab, data.pilot, data.field} {
		if err := g.check(); err != nil {
			return err
		}
	}

	p := newPlot("Nitrate Removal Rate vs. Efficiency by Experimental Scale",
		"Nitrate Removal Rate (g N m⁻³ d⁻¹)", "Removal Efficiency (%)")

	labColor := hexColor("#E63946")
	pilotColor := hexColor("#457B9D")
	fieldColor := hexColor("#2A9D8F")

	labPts, err := newScatter(data.lab.rates, data.lab.efficiency, labColor, draw.CircleGlyph{})
	if err != nil {
		return err
	}
	pilotPts, err := newScatter(data.pilot.rates, data.pilot.efficiency, pilotColor, draw.BoxGlyph{})
	if err != nil {
		return err
	}
	fieldPts, err := newScatter(data.field.rates, data.field.efficiency, fieldColor, draw.PyramidGlyph{})
	if err != nil {
		return err
	}
	p.Add(labPts, pilotPts, fieldPts)
	p.Legend.Add(fmt.Sprintf("%s (n=%d)", data.lab.name, len(data.lab.rates)), labPts)
	p.Legend.Add(fmt.Sprintf("%s (n=%d)", data.pilot.name, len(data.pilot.rates)), pilotPts)
	p.Legend.Add(fmt.Sprintf("%s (n=%d)", data.field.name, len(data.field.rates)), fieldPts)

	// Power-law trend for the laboratory cloud, with a 95% band. A fit that
	// fails to converge only costs the overlay.
	if params, curve, err := fitkit.PowerLaw(data.lab.rates, data.lab.efficiency, [3]float64{50, 0.3, 10}); err != nil {
		Warnf("%s: laboratory trend skipped: %v", fig02Slug, err)
	} else {
		se := fitkit.StdError(data.lab.rates, data.lab.efficiency, curve, 3)
		bandTop := funcPoints(func(x float64) float64 { return curve(x) + 1.96*se }, 1, 50, 100)
		bandPts := append(bandTop, reverse(funcPoints(func(x float64) float64 { return curve(x) - 1.96*se }, 1, 50, 100))...)
		if band, err := polygonOf(bandPts, withAlpha(labColor, 0.2)); err == nil {
			p.Add(band)
		}
		trend, err := newLine(funcPoints(curve, 1, 50, 100), labColor, vg.Points(2.5), dashed)
		if err != nil {
			return err
		}
		p.Add(trend)
		p.Legend.Add(fmt.Sprintf("Lab trend: y = %.1fx^%.2f + %.1f", params[0], params[1], params[2]), trend)
	}

	if params, curve, err := fitkit.PowerLaw(data.field.rates, data.field.efficiency, [3]float64{50, 0.3, 10}); err != nil {
		Warnf("%s: field trend skipped: %v", fig02Slug, err)
	} else {
		trend, err := newLine(funcPoints(curve, 1, 50, 100), fieldColor, vg.Points(2.5), dotted)
		if err != nil {
			return err
		}
		p.Add(trend)
		p.Legend.Add(fmt.Sprintf("Field trend: y = %.1fx^%.2f + %.1f", params[0], params[1], params[2]), trend)
	}

	r2 := fmt.Sprintf("Lab R² = %.3f, Field R² = %.3f",
		fitkit.RSquared(data.lab.rates, data.lab.efficiency),
		fitkit.RSquared(data.field.rates, data.field.efficiency))
	if err := addLabels(p, []float64{10}, []float64{95}, []string{r2}, vg.Points(9)); err != nil {
		return err
	}

	p.X.Min, p.X.Max = 0, 50
	p.Y.Min, p.Y.Max = 0, 100

	return savePlot(p, 11*vg.Inch, 8*vg.Inch, path)
}

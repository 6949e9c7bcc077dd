package figures

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options selects where and in which format artifacts are written. The zero
// value renders PDFs under ./figures.
type Options struct {
	OutDir string
	Format string // pdf, png or svg
}

func (o Options) normalized() Options {
	if o.OutDir == "" {
		o.OutDir = "figures"
	}
	if o.Format == "" {
		o.Format = "pdf"
	}
	return o
}

// artifactPath is the fixed, figure-specific output location.
func (o Options) artifactPath(slug string) string {
	o = o.normalized()
	return filepath.Join(o.OutDir, slug+"."+o.Format)
}

// Figure is one entry of the batch: a stable slug (artifact name), a human
// title for narration, and the render routine.
type Figure struct {
	Slug   string
	Title  string
	Render func(Options) error
}

// All returns the canonical figure set in batch order. The order follows the
// original manuscript driver, with the reinstated longevity figure and the
// decision framework appended.
func All() []Figure {
	return []Figure{
		{fig01Slug, "Removal rates by enhancement strategy", renderRemovalRates},
		{fig02Slug, "Rate vs efficiency by experimental scale", renderRateEfficiency},
		{fig03Slug, "Hydraulic performance under carbon dosing", renderHydraulicPerformance},
		{fig04Slug, "Temperature sensitivity (Q10 values)", renderTemperatureSensitivity},
		{fig06Slug, "Greenhouse gas emissions vs HRT", renderGreenhouseGas},
		{fig07Slug, "Phosphorus removal by media type", renderPhosphorusRemoval},
		{fig08Slug, "DOC leaching over time by media type", renderDOCLeaching},
		{fig09Slug, "Wood species performance comparison", renderWoodSpecies},
		{fig10Slug, "Temperature dependence modeling", renderTemperatureModeling},
		{fig05Slug, "Cost analysis (2023 USD standardized)", renderCostAnalysis},
		{fig11Slug, "Removal rate over bioreactor age", renderLongevity},
		{fig12Slug, "Enhancement strategy decision framework", renderDecisionFramework},
	}
}

// RenderAll runs the full batch sequentially with a narration line per
// figure, and returns the written artifact paths. The first fatal error
// aborts the batch; fit-convergence failures never surface here, the figure
// routines degrade to rendering without the overlay.
func RenderAll(opts Options) ([]string, error) {
	opts = opts.normalized()
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	figs := All()
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		Infof("creating %s: %s...", f.Slug, f.Title)
		if err := f.Render(opts); err != nil {
			return paths, fmt.Errorf("%s: %w", f.Slug, err)
		}
		paths = append(paths, opts.artifactPath(f.Slug))
	}
	return paths, nil
}

package figures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bioreactorlab/WoodchipFigures/src/tempmodel"
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    5,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2.5,
	}
}

func previewColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// RenderPreviews renders quick-look PNGs of the headline series under outDir.
// They are review aids, not publication artifacts: raster, coarse styling,
// no error bars or overlays.
func RenderPreviews(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create previews dir: %w", err)
	}

	toRender := []struct {
		name string
		fn   func() (chart.Chart, *chart.BarChart)
	}{
		{"removal_rates_preview.png", previewRemovalRates},
		{"greenhouse_n2o_preview.png", previewGreenhouseN2O},
		{"temperature_model_preview.png", previewTemperatureModel},
	}

	for _, item := range toRender {
		lineCh, barCh := item.fn()
		var buf bytes.Buffer
		var err error
		if barCh != nil {
			err = barCh.Render(chart.PNG, &buf)
		} else {
			err = lineCh.Render(chart.PNG, &buf)
		}
		if err != nil {
			return fmt.Errorf("render preview %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		Debugf("preview written: %s", outPath)
	}
	return nil
}

func previewRemovalRates() (chart.Chart, *chart.BarChart) {
	rates := removalRatesData.Col("rate")
	bars := make([]chart.Value, len(rates))
	for i, r := range rates {
		bars[i] = chart.Value{Value: r, Label: removalRatesData.Labels[i]}
	}
	return chart.Chart{}, &chart.BarChart{
		Title:      "Removal Rates by Strategy (g N/m³/d)",
		Width:      1280,
		Height:     512,
		BarWidth:   90,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Bars:       bars,
	}
}

func previewGreenhouseN2O() (chart.Chart, *chart.BarChart) {
	ch := chart.Chart{
		Title:      "N₂O Emissions vs HRT",
		Width:      1024,
		Height:     512,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "HRT (h)"},
		YAxis:      chart.YAxis{Name: "% of removed N"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "N₂O",
				XValues: ghgHRTHours,
				YValues: ghgN2O,
				Style:   lineStyle(previewColor("#E63946")),
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}

func previewTemperatureModel() (chart.Chart, *chart.BarChart) {
	ch := chart.Chart{
		Title:      "Temperature Dependence of Nitrate Removal",
		Width:      1024,
		Height:     512,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Temperature (°C)"},
		YAxis:      chart.YAxis{Name: "g N/m³/d"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Arrhenius model",
				XValues: modelTemps,
				YValues: tempmodel.NitrateRemoval.Series(modelTemps),
				Style:   lineStyle(previewColor("#2E86AB")),
			},
			chart.ContinuousSeries{
				Name:    "Experimental",
				XValues: nitrateExpTemps,
				YValues: nitrateExpRates,
				Style:   pointStyle(previewColor("#E63946")),
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}

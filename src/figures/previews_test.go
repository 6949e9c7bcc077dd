package figures

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderPreviews(t *testing.T) {
	dir := t.TempDir()
	if err := RenderPreviews(dir); err != nil {
		t.Fatalf("RenderPreviews: %v", err)
	}
	for _, name := range []string{
		"removal_rates_preview.png",
		"greenhouse_n2o_preview.png",
		"temperature_model_preview.png",
	} {
		st, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("preview %s missing: %v", name, err)
		}
		if st.Size() == 0 {
			t.Fatalf("preview %s is empty", name)
		}
	}
}

func TestPreviewSeriesMatchFigureData(t *testing.T) {
	_, bars := previewRemovalRates()
	if bars == nil {
		t.Fatal("removal rates preview should be a bar chart")
	}
	rates := removalRatesData.Col("rate")
	if len(bars.Bars) != len(rates) {
		t.Fatalf("preview has %d bars, dataset has %d rates", len(bars.Bars), len(rates))
	}
	for i, b := range bars.Bars {
		if b.Value != rates[i] {
			t.Fatalf("bar %d = %v, dataset rate = %v", i, b.Value, rates[i])
		}
	}
}

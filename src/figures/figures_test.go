package figures

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllHasTwelveUniqueFigures(t *testing.T) {
	figs := All()
	if len(figs) != 12 {
		t.Fatalf("All() returned %d figures, want 12", len(figs))
	}
	seen := map[string]bool{}
	for _, f := range figs {
		if f.Slug == "" || f.Title == "" || f.Render == nil {
			t.Fatalf("incomplete figure entry: %+v", f)
		}
		if seen[f.Slug] {
			t.Fatalf("duplicate slug %s", f.Slug)
		}
		seen[f.Slug] = true
	}
}

func TestEmbeddedDatasetsAligned(t *testing.T) {
	for _, d := range []interface{ Validate() error }{
		removalRatesData, hydraulicData, temperatureSensitivityData,
		phosphorusData, woodSpeciesData,
	} {
		if err := d.Validate(); err != nil {
			t.Fatalf("embedded dataset invalid: %v", err)
		}
	}
}

func TestRenderAllProducesEveryArtifact(t *testing.T) {
	dir := t.TempDir()
	paths, err := RenderAll(Options{OutDir: dir, Format: "png"})
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	if len(paths) != 12 {
		t.Fatalf("RenderAll wrote %d artifacts, want 12", len(paths))
	}
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing artifact %s: %v", p, err)
		}
		if st.Size() == 0 {
			t.Fatalf("artifact %s is empty", p)
		}
	}
}

func TestRenderAllPDF(t *testing.T) {
	dir := t.TempDir()
	paths, err := RenderAll(Options{OutDir: dir, Format: "pdf"})
	if err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	for _, p := range paths {
		if filepath.Ext(p) != ".pdf" {
			t.Fatalf("unexpected artifact extension: %s", p)
		}
		st, err := os.Stat(p)
		if err != nil || st.Size() == 0 {
			t.Fatalf("bad artifact %s: %v", p, err)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	figs := All()
	first := Options{OutDir: t.TempDir(), Format: "png"}
	second := Options{OutDir: t.TempDir(), Format: "png"}
	for _, opts := range []Options{first, second} {
		if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := figs[0].Render(opts); err != nil {
			t.Fatalf("render: %v", err)
		}
	}
	a, err := os.ReadFile(first.artifactPath(figs[0].Slug))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second.artifactPath(figs[0].Slug))
	if err != nil {
		t.Fatal(err)
	}
	if len(a) == 0 || string(a) != string(b) {
		t.Fatalf("renders differ: %d vs %d bytes", len(a), len(b))
	}
}

func TestRateEfficiencyDegradesWithoutFit(t *testing.T) {
	// Two points per group cannot support a three-parameter fit; the figure
	// must still be written, just without trend overlays.
	degenerate := rateEfficiencyDataset{
		lab:   scaleGroup{name: "Laboratory", rates: []float64{5, 10}, efficiency: []float64{50, 60}},
		pilot: scaleGroup{name: "Pilot-scale", rates: []float64{8, 9}, efficiency: []float64{40, 45}},
		field: scaleGroup{name: "Field-scale", rates: []float64{6, 7}, efficiency: []float64{55, 65}},
	}
	path := filepath.Join(t.TempDir(), "degenerate.png")
	if err := rateEfficiencyFigure(degenerate, path); err != nil {
		t.Fatalf("figure should survive fit failure: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if st.Size() == 0 {
		t.Fatal("artifact is empty")
	}
}

func TestRateEfficiencyRejectsMisalignedData(t *testing.T) {
	bad := rateEfficiencyData
	bad.lab.efficiency = bad.lab.efficiency[:3]
	if err := rateEfficiencyFigure(bad, filepath.Join(t.TempDir(), "bad.png")); err == nil {
		t.Fatal("expected misaligned data to be fatal")
	}
}

func TestArtifactPathDefaults(t *testing.T) {
	var opts Options
	got := opts.artifactPath("fig1_removal_rates_scientific")
	want := filepath.Join("figures", "fig1_removal_rates_scientific.pdf")
	if got != want {
		t.Fatalf("artifactPath = %s, want %s", got, want)
	}
}

func TestCostScenariosStayAligned(t *testing.T) {
	for _, s := range costScenarios {
		if len(s.raw) != len(costConfigurations) || len(s.years) != len(costConfigurations) {
			t.Fatalf("scenario %s misaligned with configurations", s.name)
		}
	}
}

func TestDecisionFrameworkBuilds(t *testing.T) {
	d, err := buildDecisionFramework()
	if err != nil {
		t.Fatalf("buildDecisionFramework: %v", err)
	}
	if got := len(d.Nodes()); got != 12 {
		t.Fatalf("framework has %d nodes, want 12", got)
	}
	for _, n := range d.Nodes() {
		if _, ok := frameworkClassColors[n.Class]; !ok {
			t.Fatalf("node %s has unmapped class %q", n.ID, n.Class)
		}
	}
	arrows := d.Arrows()
	if !arrows[len(arrows)-1].Dashed {
		t.Fatal("last arrow should be the dashed feedback loop")
	}
}

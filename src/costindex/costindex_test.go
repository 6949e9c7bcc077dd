package costindex

import (
	"math"
	"testing"
)

func TestStandardizeDocumentedLiteral(t *testing.T) {
	// The 2024-sourced $86/kg worst case must render as $84.7 (86 × 0.985).
	got, err := Standardize(86, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-84.71) > 1e-9 {
		t.Fatalf("Standardize(86, 2024) = %v, want 84.71", got)
	}
}

func TestReferenceYearIsIdentity(t *testing.T) {
	got, err := Standardize(15, ReferenceYear)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Fatalf("Standardize(15, %d) = %v, want 15", ReferenceYear, got)
	}
}

func TestUnknownYear(t *testing.T) {
	if _, err := Standardize(10, 1999); err == nil {
		t.Fatal("expected error for year with no deflator")
	}
}

func TestStandardizeSeries(t *testing.T) {
	got, err := StandardizeSeries([]float64{10, 20}, []int{2023, 2021})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 10 || math.Abs(got[1]-21.6) > 1e-9 {
		t.Fatalf("series = %v, want [10 21.6]", got)
	}
	if _, err := StandardizeSeries([]float64{10}, []int{2023, 2021}); err == nil {
		t.Fatal("expected error for misaligned series")
	}
}

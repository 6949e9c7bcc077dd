package tempmodel

import (
	"math"
	"testing"
)

func TestRateAtReferenceIsBase(t *testing.T) {
	if got := NitrateRemoval.Rate(20); got != 8.0 {
		t.Fatalf("Rate(20) = %v, want exactly 8.0", got)
	}
	if got := DOCProduction.Rate(20); got != 15.0 {
		t.Fatalf("DOC Rate(20) = %v, want exactly 15.0", got)
	}
}

func TestRateTenDegreesAboveReference(t *testing.T) {
	// One full Q10 step: 8.0 * 1.16 = 9.28.
	got := NitrateRemoval.Rate(30)
	if math.Abs(got-9.28) > 1e-12 {
		t.Fatalf("Rate(30) = %v, want 9.28", got)
	}
}

func TestRateBelowReference(t *testing.T) {
	// Symmetry: Rate(10) == Base / Theta.
	got := NitrateRemoval.Rate(10)
	want := 8.0 / 1.16
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Rate(10) = %v, want %v", got, want)
	}
}

func TestSeriesAlignment(t *testing.T) {
	temps := []float64{4, 8, 12, 16, 20, 24, 28, 30}
	s := NitrateRemoval.Series(temps)
	if len(s) != len(temps) {
		t.Fatalf("series length %d, want %d", len(s), len(temps))
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			t.Fatalf("series not monotonic at %d: %v", i, s)
		}
	}
}

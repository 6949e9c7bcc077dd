package figdata

import (
	"strings"
	"testing"
)

func TestValidateAligned(t *testing.T) {
	d := Dataset{
		Name:   "ok",
		Labels: []string{"a", "b", "c"},
		Cols: []Column{
			{Name: "rate", Values: []float64{1, 2, 3}},
			{Name: "err", Values: []float64{0.1, 0.2, 0.3}},
		},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("expected aligned dataset to validate, got %v", err)
	}
}

func TestValidateMismatch(t *testing.T) {
	d := Dataset{
		Name:   "bad",
		Labels: []string{"a", "b", "c"},
		Cols: []Column{
			{Name: "rate", Values: []float64{1, 2}},
		},
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for short column")
	}
	if !strings.Contains(err.Error(), "rate") {
		t.Fatalf("error should name the offending column: %v", err)
	}
}

func TestColLookup(t *testing.T) {
	d := Dataset{
		Labels: []string{"a"},
		Cols:   []Column{{Name: "rate", Values: []float64{7}}},
	}
	if got := d.Col("rate"); len(got) != 1 || got[0] != 7 {
		t.Fatalf("Col(rate) = %v", got)
	}
	if got := d.Col("missing"); got != nil {
		t.Fatalf("Col(missing) = %v, want nil", got)
	}
}

func TestAligned(t *testing.T) {
	if err := Aligned("scatter", 3, 3, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Aligned("scatter", 3, 3, 2); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

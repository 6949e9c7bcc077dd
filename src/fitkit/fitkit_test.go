package fitkit

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestPowerLawRecoversKnownParams(t *testing.T) {
	// y = 3*x^0.5 + 2, sampled without noise.
	xs := []float64{1, 2, 4, 6, 9, 12, 16, 20, 25}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*math.Pow(x, 0.5) + 2
	}
	params, curve, err := PowerLaw(xs, ys, [3]float64{1, 1, 0})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if !almostEqual(params[0], 3, 1e-3) || !almostEqual(params[1], 0.5, 1e-3) || !almostEqual(params[2], 2, 1e-2) {
		t.Fatalf("params = %v, want ~[3 0.5 2]", params)
	}
	if got := curve(9); !almostEqual(got, 11, 1e-2) {
		t.Fatalf("curve(9) = %v, want ~11", got)
	}
}

func TestExponentialDecayRecoversKnownParams(t *testing.T) {
	// y = 70*exp(-1.2*x) + 3 over the three operational phases.
	xs := []float64{0, 0.5, 1, 1.5, 2}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 70*math.Exp(-1.2*x) + 3
	}
	params, _, err := ExponentialDecay(xs, ys, [3]float64{70, 1, 3})
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if !almostEqual(params[0], 70, 1e-2) || !almostEqual(params[1], 1.2, 1e-3) || !almostEqual(params[2], 3, 1e-2) {
		t.Fatalf("params = %v, want ~[70 1.2 3]", params)
	}
}

func TestFitRejectsDegenerateInput(t *testing.T) {
	if _, _, err := PowerLaw([]float64{1, 2}, []float64{1, 2}, [3]float64{1, 1, 0}); err == nil {
		t.Fatal("expected error for too few points")
	}
	if _, _, err := Exponential([]float64{1, 2, 3}, []float64{1, 2}, [3]float64{1, 1, 0}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestPolynomialExactOnQuadratic(t *testing.T) {
	// y = 1 - 2x + 0.5x^2
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1 - 2*x + 0.5*x*x
	}
	coeffs, curve, err := Polynomial(xs, ys, 2)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	want := []float64{1, -2, 0.5}
	for i := range want {
		if !almostEqual(coeffs[i], want[i], 1e-9) {
			t.Fatalf("coeffs = %v, want %v", coeffs, want)
		}
	}
	if got := curve(10); !almostEqual(got, 1-20+50, 1e-9) {
		t.Fatalf("curve(10) = %v", got)
	}
}

func TestPolynomialDegenerate(t *testing.T) {
	if _, _, err := Polynomial([]float64{1, 2}, []float64{1, 2}, 3); err == nil {
		t.Fatal("expected error when points < degree+1")
	}
}

func TestRSquaredPerfectLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 6, 8}
	if got := RSquared(xs, ys); !almostEqual(got, 1, 1e-12) {
		t.Fatalf("RSquared = %v, want 1", got)
	}
}

func TestStdErrorZeroForExactFit(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}
	curve := func(x float64) float64 { return 2 * x }
	if got := StdError(xs, ys, curve, 2); got != 0 {
		t.Fatalf("StdError = %v, want 0", got)
	}
}

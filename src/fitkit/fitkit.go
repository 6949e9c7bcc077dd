// Package fitkit wraps the nonlinear least-squares fits the figure overlays
// need (power law, exponential growth/decay) plus a plain polynomial least
// squares and a Pearson R². A fit that cannot converge returns an error; the
// caller renders the figure without the overlay.
package fitkit

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Curve evaluates a fitted model at x.
type Curve func(x float64) float64

// model is a three-parameter family y = f(x; p0, p1, p2).
type model func(x, a, b, c float64) float64

func powerModel(x, a, b, c float64) float64 { return a*math.Pow(x, b) + c }
func expModel(x, a, b, c float64) float64   { return a*math.Exp(b*x) + c }
func decayModel(x, a, b, c float64) float64 { return a*math.Exp(-b*x) + c }

// PowerLaw fits y = a*x^b + c.
func PowerLaw(xs, ys []float64, init [3]float64) ([3]float64, Curve, error) {
	return solve("power law", powerModel, xs, ys, init)
}

// Exponential fits y = a*exp(b*x) + c.
func Exponential(xs, ys []float64, init [3]float64) ([3]float64, Curve, error) {
	return solve("exponential", expModel, xs, ys, init)
}

// ExponentialDecay fits y = a*exp(-b*x) + c.
func ExponentialDecay(xs, ys []float64, init [3]float64) ([3]float64, Curve, error) {
	return solve("exponential decay", decayModel, xs, ys, init)
}

func solve(name string, m model, xs, ys []float64, init [3]float64) ([3]float64, Curve, error) {
	var out [3]float64
	if len(xs) != len(ys) {
		return out, nil, fmt.Errorf("%s fit: %d x values vs %d y values", name, len(xs), len(ys))
	}
	if len(xs) < 3 {
		return out, nil, fmt.Errorf("%s fit: need at least 3 points, have %d", name, len(xs))
	}

	f := func(dst, guess []float64) {
		for i := range xs {
			dst[i] = m(xs[i], guess[0], guess[1], guess[2]) - ys[i]
		}
	}
	jacobian := lm.NumJac{Func: f}
	problem := lm.LMProblem{
		Dim:        3,
		Size:       len(xs),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: []float64{init[0], init[1], init[2]},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	results, err := lm.LM(problem, &lm.Settings{Iterations: 200, ObjectiveTol: 1e-16})
	if err != nil {
		return out, nil, fmt.Errorf("%s fit: %w", name, err)
	}
	for i, v := range results.X {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out, nil, fmt.Errorf("%s fit: parameter %d diverged", name, i)
		}
		out[i] = v
	}
	a, b, c := out[0], out[1], out[2]
	return out, func(x float64) float64 { return m(x, a, b, c) }, nil
}

// Polynomial fits a degree-d polynomial by least squares and returns its
// coefficients in ascending order (c0 + c1*x + ... + cd*x^d).
func Polynomial(xs, ys []float64, degree int) ([]float64, Curve, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("polynomial fit: %d x values vs %d y values", len(xs), len(ys))
	}
	if degree < 1 || len(xs) < degree+1 {
		return nil, nil, fmt.Errorf("polynomial fit: degree %d needs at least %d points, have %d", degree, degree+1, len(xs))
	}

	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}
	b := mat.NewVecDense(len(ys), ys)

	var qr mat.QR
	qr.Factorize(a)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return nil, nil, fmt.Errorf("polynomial fit: %w", err)
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
		if math.IsNaN(coeffs[i]) || math.IsInf(coeffs[i], 0) {
			return nil, nil, fmt.Errorf("polynomial fit: coefficient %d diverged", i)
		}
	}
	curve := func(x float64) float64 {
		y, v := 0.0, 1.0
		for _, c := range coeffs {
			y += c * v
			v *= x
		}
		return y
	}
	return coeffs, curve, nil
}

// RSquared returns the square of the Pearson correlation between xs and ys.
func RSquared(xs, ys []float64) float64 {
	r := stat.Correlation(xs, ys, nil)
	return r * r
}

// StdError returns the residual standard error of curve against the points,
// with p fitted parameters. Used for the confidence band overlays.
func StdError(xs, ys []float64, curve Curve, p int) float64 {
	if len(xs) <= p {
		return 0
	}
	var ss float64
	for i := range xs {
		r := ys[i] - curve(xs[i])
		ss += r * r
	}
	return math.Sqrt(ss / float64(len(xs)-p))
}

// Package costindex standardizes literature cost figures to a single
// reference currency-year. Every monetary value in the cost-analysis figure
// is multiplied by its source-year deflator before plotting, so bars sourced
// from different publication years are comparable.
package costindex

import "fmt"

// ReferenceYear is the currency-year all costs are expressed in (2023 USD).
const ReferenceYear = 2023

// deflators convert a source-year dollar to a ReferenceYear dollar
// (GDP-deflator ratios, rounded to three figures).
var deflators = map[int]float64{
	2015: 1.28,
	2018: 1.19,
	2019: 1.17,
	2020: 1.15,
	2021: 1.08,
	2022: 1.03,
	2023: 1.00,
	2024: 0.985,
}

// Deflator returns the source-year to reference-year factor.
func Deflator(year int) (float64, error) {
	f, ok := deflators[year]
	if !ok {
		return 0, fmt.Errorf("no deflator for source year %d", year)
	}
	return f, nil
}

// Standardize converts a raw cost from its source year into ReferenceYear
// dollars.
func Standardize(raw float64, year int) (float64, error) {
	f, err := Deflator(year)
	if err != nil {
		return 0, err
	}
	return raw * f, nil
}

// StandardizeSeries converts an aligned set of raw costs and source years.
func StandardizeSeries(raw []float64, years []int) ([]float64, error) {
	if len(raw) != len(years) {
		return nil, fmt.Errorf("%d raw costs vs %d source years", len(raw), len(years))
	}
	out := make([]float64, len(raw))
	for i := range raw {
		v, err := Standardize(raw[i], years[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Package figdata holds the small value types shared by the figure routines:
// ordered category labels with index-aligned numeric columns, plus the
// alignment check every embedded dataset must pass before rendering.
//
// Category order is display order and is significant (it encodes the
// presentation intent of the underlying review, e.g. severity or chronology).
// Datasets are built as literals at call time, consumed by one rendering pass
// and discarded; nothing here is mutated or shared between figures.
package figdata

import "fmt"

// Column is one named numeric series aligned to a dataset's labels.
type Column struct {
	Name   string
	Values []float64
}

// Dataset couples ordered category labels with aligned numeric columns.
// Index i across labels and every column describes the same category.
type Dataset struct {
	Name   string
	Labels []string
	Cols   []Column
}

// Validate checks that every column has exactly one value per label.
func (d Dataset) Validate() error {
	n := len(d.Labels)
	for _, c := range d.Cols {
		if len(c.Values) != n {
			return fmt.Errorf("dataset %s: column %s has %d values for %d labels", d.Name, c.Name, len(c.Values), n)
		}
	}
	return nil
}

// Col returns the values of the named column, or nil when absent.
func (d Dataset) Col(name string) []float64 {
	for _, c := range d.Cols {
		if c.Name == name {
			return c.Values
		}
	}
	return nil
}

// Aligned checks that a set of sequence lengths all equal n. Figures use it
// for scatter-style data that has no category labels to anchor a Dataset.
func Aligned(what string, n int, lens ...int) error {
	for i, l := range lens {
		if l != n {
			return fmt.Errorf("%s: sequence %d has length %d, want %d", what, i, l, n)
		}
	}
	return nil
}

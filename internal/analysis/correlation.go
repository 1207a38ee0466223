package analysis

import (
	"math"

	"godash/domain/aggregates"
	"godash/domain/core"
	"godash/domain/dataset"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// minCorrelationRows is the smallest view a Pearson coefficient is defined on
const minCorrelationRows = 2

// pairwiseComplete keeps the positions where both columns have a value
func pairwiseComplete(x, y []float64) ([]float64, []float64) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// pearson returns NaN when the coefficient is undefined (too few pairs or zero variance)
func pearson(x, y []float64) float64 {
	xs, ys := pairwiseComplete(x, y)
	if len(xs) < minCorrelationRows {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return math.NaN()
	}
	return math.Max(-1, math.Min(1, r))
}

// ComputeCorrelation builds the symmetric Pearson matrix over the numeric columns of the view
func ComputeCorrelation(view *dataset.FilteredView, numeric dataset.NumericColumnSet) (*aggregates.CorrelationMatrix, error) {
	if view.Len() < minCorrelationRows {
		return nil, core.NewInsufficientDataError(aggregates.ViewCorrelation, view.Len(), minCorrelationRows)
	}
	if len(numeric) == 0 {
		return nil, core.ErrNoNumericColumns
	}

	k := len(numeric)
	columns := make([][]float64, k)
	for i, name := range numeric {
		columns[i] = view.Values(name)
	}

	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < k; j++ {
			sym.SetSym(i, j, pearson(columns[i], columns[j]))
		}
	}

	values := make([][]float64, k)
	for i := range values {
		values[i] = make([]float64, k)
		for j := range values[i] {
			values[i][j] = sym.At(i, j)
		}
	}

	names := make([]string, k)
	copy(names, numeric)
	return &aggregates.CorrelationMatrix{Columns: names, Values: values}, nil
}

package analysis

import (
	"math"
	"sort"

	"godash/domain/aggregates"
	"godash/domain/core"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// finiteSorted drops missing cells and returns the remaining values ascending
func finiteSorted(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// quartiles returns Q1 and Q3 by linear interpolation over sorted data
func quartiles(sorted []float64) (float64, float64) {
	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	return q1, q3
}

// ComputeSummary builds the describe-style table of one column
func ComputeSummary(column string, values []float64) (*aggregates.Summary, error) {
	data := finiteSorted(values)
	if len(data) == 0 {
		return nil, core.NewInsufficientDataError(aggregates.ViewSummary, 0, 1)
	}

	mean, _ := stats.Mean(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	median, _ := stats.Median(data)
	stdDev := 0.0
	if len(data) > 1 {
		stdDev, _ = stats.StandardDeviationSample(data)
	}
	q1, q3 := quartiles(data)

	return &aggregates.Summary{
		Column: column,
		Count:  len(data),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
	}, nil
}

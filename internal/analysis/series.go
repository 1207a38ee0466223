package analysis

import (
	"math"

	"godash/domain/aggregates"
	"godash/domain/dataset"
)

// ComputeSeries lists the selected column in row order, gaps kept as nil values
func ComputeSeries(view *dataset.FilteredView) *aggregates.Series {
	column := view.Params.Column
	values := view.Values(column)

	points := make([]aggregates.SeriesPoint, len(view.Rows))
	for i, row := range view.Rows {
		points[i].Index = row
		if v := values[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			points[i].Value = &v
		}
	}
	return &aggregates.Series{Column: column, Points: points}
}

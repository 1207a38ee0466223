package analysis

import (
	"fmt"
	"log"

	"godash/domain/aggregates"
	"godash/domain/dataset"
)

// Options tunes the derived views
type Options struct {
	TopN          int
	MaxBins       int
	DensityPoints int
}

// DefaultOptions returns the dashboard defaults
func DefaultOptions() Options {
	return Options{
		TopN:          DefaultTopN,
		MaxBins:       50,
		DensityPoints: 100,
	}
}

// ComputeAggregates derives every view of the filtered rows.
// Each view is computed independently; a failure is recorded on the result and the rest still run.
func ComputeAggregates(view *dataset.FilteredView, numeric dataset.NumericColumnSet, opts Options) *aggregates.DerivedAggregates {
	column := view.Params.Column
	values := view.Values(column)
	result := &aggregates.DerivedAggregates{RowCount: view.Len()}

	guard(result, aggregates.ViewSummary, func() error {
		summary, err := ComputeSummary(column, values)
		result.Summary = summary
		return err
	})
	guard(result, aggregates.ViewHistogram, func() error {
		result.Histogram = ComputeHistogram(column, values, opts.MaxBins, opts.DensityPoints)
		return nil
	})
	guard(result, aggregates.ViewBoxPlot, func() error {
		box, err := ComputeBoxPlot(column, values)
		result.BoxPlot = box
		return err
	})
	guard(result, aggregates.ViewCorrelation, func() error {
		matrix, err := ComputeCorrelation(view, numeric)
		result.Correlation = matrix
		return err
	})
	guard(result, aggregates.ViewSeries, func() error {
		result.Series = ComputeSeries(view)
		return nil
	})
	guard(result, aggregates.ViewTopValues, func() error {
		result.TopValues = ComputeTopValues(column, values, opts.TopN)
		return nil
	})

	return result
}

// guard runs one view computation and records its error or panic on the result
func guard(result *aggregates.DerivedAggregates, name string, compute func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ComputeAggregates] %s panicked: %v", name, r)
			result.Fail(name, fmt.Errorf("%s computation failed: %v", name, r))
		}
	}()
	if err := compute(); err != nil {
		result.Fail(name, err)
	}
}

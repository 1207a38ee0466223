// Package dashboard holds the reactive view controller: every widget change is one
// pure recompute of (Dataset, FilterParameters) -> View.
package dashboard

import (
	"time"

	"godash/domain/aggregates"
	"godash/domain/core"
	"godash/domain/dataset"
	"godash/internal"
	"godash/internal/analysis"
)

// DefaultPreviewRows caps the raw-data table
const DefaultPreviewRows = 100

// Options tunes the controller's derived views
type Options struct {
	Analysis    analysis.Options
	PreviewRows int
}

// DefaultOptions returns the dashboard defaults
func DefaultOptions() Options {
	return Options{
		Analysis:    analysis.DefaultOptions(),
		PreviewRows: DefaultPreviewRows,
	}
}

// ColumnInfo describes one selectable column and its slider limits
type ColumnInfo struct {
	Name      string  `json:"name"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	HasValues bool    `json:"has_values"`
}

// View is the result of one recompute pass
type View struct {
	ID         core.ViewID                   `json:"id"`
	Params     dataset.FilterParameters      `json:"params"`
	TotalRows  int                           `json:"total_rows"`
	RowCount   int                           `json:"row_count"`
	Aggregates *aggregates.DerivedAggregates `json:"aggregates"`
	Preview    *dataset.PreviewTable         `json:"preview,omitempty"`
	ComputedAt time.Time                     `json:"computed_at"`

	Filtered *dataset.FilteredView `json:"-"`
}

// Controller holds the loaded dataset; it keeps no other state between passes
type Controller struct {
	ds      *dataset.Dataset
	numeric dataset.NumericColumnSet
	opts    Options
	logger  *internal.Logger
}

// NewController derives the numeric columns once; none is ErrNoNumericColumns
func NewController(ds *dataset.Dataset, opts Options) (*Controller, error) {
	numeric, err := dataset.NumericColumns(ds)
	if err != nil {
		return nil, err
	}
	if opts.PreviewRows < 0 {
		opts.PreviewRows = DefaultPreviewRows
	}
	return &Controller{
		ds:      ds,
		numeric: numeric,
		opts:    opts,
		logger:  internal.DefaultLogger.With("Controller"),
	}, nil
}

// Dataset returns the loaded table
func (c *Controller) Dataset() *dataset.Dataset {
	return c.ds
}

// NumericColumns returns the columns eligible for filtering
func (c *Controller) NumericColumns() dataset.NumericColumnSet {
	return c.numeric
}

// Bounds returns the true min/max of a numeric column
func (c *Controller) Bounds(column string) (dataset.Range, error) {
	if !c.numeric.Contains(column) {
		return dataset.Range{}, core.ErrColumnNotFound
	}
	col, _ := c.ds.Column(column)
	lo, hi, ok := col.Bounds()
	if !ok {
		return dataset.Range{}, core.NewInsufficientDataError(column, 0, 1)
	}
	return dataset.Range{Low: lo, High: hi}, nil
}

// Columns lists every numeric column with its slider limits
func (c *Controller) Columns() []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(c.numeric))
	for _, name := range c.numeric {
		info := ColumnInfo{Name: name}
		if r, err := c.Bounds(name); err == nil {
			info.Min, info.Max, info.HasValues = r.Low, r.High, true
		}
		infos = append(infos, info)
	}
	return infos
}

// DefaultParameters is the initial widget state: first numeric column, full range, raw data hidden
func (c *Controller) DefaultParameters() dataset.FilterParameters {
	params := dataset.FilterParameters{Column: c.numeric[0]}
	if r, err := c.Bounds(params.Column); err == nil {
		params.Range = r
	}
	return params
}

// Compute validates the parameters, filters, and derives every view
func (c *Controller) Compute(params dataset.FilterParameters) (*View, error) {
	start := time.Now()
	if err := params.Validate(c.numeric); err != nil {
		c.logger.Debug("rejected %+v: %v", params, err)
		return nil, err
	}

	filtered, err := dataset.ApplyFilter(c.ds, params)
	if err != nil {
		return nil, err
	}

	view := &View{
		ID:         core.NewViewID(),
		Params:     params,
		TotalRows:  c.ds.RowCount(),
		RowCount:   filtered.Len(),
		Aggregates: analysis.ComputeAggregates(filtered, c.numeric, c.opts.Analysis),
		ComputedAt: time.Now(),
		Filtered:   filtered,
	}
	if params.ShowRaw {
		preview := filtered.Preview(c.opts.PreviewRows)
		view.Preview = &preview
	}

	c.logger.Trace("view %s: %s in [%g, %g] kept %d/%d rows, %d failed views, took %s",
		view.ID, params.Column, params.Range.Low, params.Range.High,
		view.RowCount, view.TotalRows, len(view.Aggregates.Errors), time.Since(start))
	return view, nil
}

package dataset

import (
	"godash/domain/core"
)

// FilteredView is the subsequence of Dataset rows whose selected column lies in range.
// Rows holds source row indices in ascending order.
type FilteredView struct {
	Params FilterParameters `json:"params"`
	Rows   []int            `json:"rows"`

	dataset *Dataset
}

// ApplyFilter keeps the rows whose selected column value lies in [Low, High].
// No qualifying rows is an empty view, not an error.
func ApplyFilter(d *Dataset, params FilterParameters) (*FilteredView, error) {
	col, ok := d.Column(params.Column)
	if !ok || !col.IsNumeric() {
		return nil, core.ErrColumnNotFound
	}

	rows := make([]int, 0)
	for i, v := range col.Numbers {
		if params.Range.Contains(v) {
			rows = append(rows, i)
		}
	}

	return &FilteredView{
		Params:  params,
		Rows:    rows,
		dataset: d,
	}, nil
}

// Len returns the number of rows in the view
func (v *FilteredView) Len() int {
	return len(v.Rows)
}

// Dataset returns the table the view was cut from
func (v *FilteredView) Dataset() *Dataset {
	return v.dataset
}

// Values returns a numeric column restricted to the view, NaN kept
func (v *FilteredView) Values(column string) []float64 {
	col, ok := v.dataset.Column(column)
	if !ok || !col.IsNumeric() {
		return nil
	}
	out := make([]float64, len(v.Rows))
	for i, row := range v.Rows {
		out[i] = col.Numbers[row]
	}
	return out
}

// Row returns the display text of the i-th filtered row in column order
func (v *FilteredView) Row(i int) []string {
	if i < 0 || i >= len(v.Rows) {
		return nil
	}
	names := v.dataset.ColumnNames()
	cells := make([]string, len(names))
	for j, name := range names {
		cells[j] = v.dataset.Cell(v.Rows[i], name)
	}
	return cells
}

// PreviewTable is the capped raw-data table shown when ShowRaw is set
type PreviewTable struct {
	Columns   []string   `json:"columns"`
	Index     []int      `json:"index"`
	Rows      [][]string `json:"rows"`
	Total     int        `json:"total"`
	Truncated bool       `json:"truncated"`
}

// Preview renders the first limit rows of the view as display text
func (v *FilteredView) Preview(limit int) PreviewTable {
	n := len(v.Rows)
	if limit >= 0 && n > limit {
		n = limit
	}

	columns := v.dataset.ColumnNames()
	table := PreviewTable{
		Columns:   columns,
		Index:     make([]int, n),
		Rows:      make([][]string, n),
		Total:     len(v.Rows),
		Truncated: n < len(v.Rows),
	}
	for i := 0; i < n; i++ {
		table.Index[i] = v.Rows[i]
		table.Rows[i] = v.Row(i)
	}
	return table
}

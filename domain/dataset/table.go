package dataset

import (
	"fmt"
	"math"
	"time"
)

// ColumnKind is the storage type detected for a column
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindBool    ColumnKind = "bool"
	KindText    ColumnKind = "text"
)

// Column is one named, typed column of a Dataset.
// Numbers is populated only for numeric columns; missing cells are NaN.
// Text holds the display form of every cell, for every kind.
type Column struct {
	Name    string     `json:"name"`
	Kind    ColumnKind `json:"kind"`
	Numbers []float64  `json:"-"`
	Text    []string   `json:"-"`
}

// IsNumeric reports whether the column can drive range filtering
func (c Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// Bounds returns the true min/max of a numeric column, ignoring missing cells
func (c Column) Bounds() (float64, float64, bool) {
	if !c.IsNumeric() {
		return 0, 0, false
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range c.Numbers {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	return lo, hi, true
}

// Dataset is the immutable in-memory table loaded once per process
type Dataset struct {
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`

	columns []Column
	index   map[string]int
	rows    int
}

// NewDataset assembles a Dataset from fully built columns
func NewDataset(source string, columns []Column) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}

	rows := len(columns[0].Text)
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		if len(col.Text) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Text), rows)
		}
		if col.IsNumeric() && len(col.Numbers) != rows {
			return nil, fmt.Errorf("numeric column %q has %d values, expected %d", col.Name, len(col.Numbers), rows)
		}
		index[col.Name] = i
	}

	return &Dataset{
		Source:   source,
		LoadedAt: time.Now(),
		columns:  columns,
		index:    index,
		rows:     rows,
	}, nil
}

// RowCount returns the number of data rows
func (d *Dataset) RowCount() int {
	return d.rows
}

// Columns returns the columns in source order
func (d *Dataset) Columns() []Column {
	out := make([]Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnNames returns the column names in source order
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[i], true
}

// Cell returns the display text of one cell
func (d *Dataset) Cell(row int, column string) string {
	i, ok := d.index[column]
	if !ok || row < 0 || row >= d.rows {
		return ""
	}
	return d.columns[i].Text[row]
}

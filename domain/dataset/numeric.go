package dataset

import (
	"godash/domain/core"
)

// NumericColumnSet lists the numeric columns of a Dataset in source order
type NumericColumnSet []string

// Contains reports whether name is a numeric column
func (s NumericColumnSet) Contains(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

// NumericColumns derives the NumericColumnSet; an empty set is ErrNoNumericColumns
func NumericColumns(d *Dataset) (NumericColumnSet, error) {
	var set NumericColumnSet
	for _, col := range d.columns {
		if col.IsNumeric() {
			set = append(set, col.Name)
		}
	}
	if len(set) == 0 {
		return nil, core.ErrNoNumericColumns
	}
	return set, nil
}

package dataset

import (
	"math"

	"godash/domain/core"
)

// Range is a closed numeric interval [Low, High]
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies in the range, bounds inclusive. NaN never does.
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// Covers reports whether other lies entirely inside r
func (r Range) Covers(other Range) bool {
	return r.Low <= other.Low && other.High <= r.High
}

// FilterParameters is the full set of user-chosen inputs for one recompute
type FilterParameters struct {
	Column  string `json:"column"`
	Range   Range  `json:"range"`
	ShowRaw bool   `json:"show_raw"`
}

// Validate checks the parameters against the numeric columns of the loaded dataset
func (p FilterParameters) Validate(numeric NumericColumnSet) error {
	if p.Column == "" {
		return core.NewParameterError("column", "is required")
	}
	if !numeric.Contains(p.Column) {
		return core.ErrColumnNotFound
	}
	if math.IsNaN(p.Range.Low) || math.IsInf(p.Range.Low, 0) {
		return core.NewParameterError("low", "must be finite")
	}
	if math.IsNaN(p.Range.High) || math.IsInf(p.Range.High, 0) {
		return core.NewParameterError("high", "must be finite")
	}
	if p.Range.Low > p.Range.High {
		return core.NewParameterError("range", "low must not exceed high")
	}
	return nil
}

package aggregates

import (
	"encoding/json"
	"math"
)

// Summary is the describe-style table for the selected column
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Bin is one histogram bucket covering [Low, High); the last bin is closed
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Point is one (x, y) sample of a curve or series
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Histogram is the distribution view with a kernel density overlay scaled to counts
type Histogram struct {
	Column  string  `json:"column"`
	Bins    []Bin   `json:"bins"`
	Density []Point `json:"density"`
}

// BoxPlot is the spread view using Tukey whiskers
type BoxPlot struct {
	Column       string    `json:"column"`
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// CorrelationMatrix holds pairwise Pearson coefficients.
// Undefined pairs are NaN and encode as JSON null.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the coefficient for a pair of columns
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, name := range m.Columns {
		if name == a {
			i = k
		}
		if name == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.Values[i][j], true
}

func (m CorrelationMatrix) MarshalJSON() ([]byte, error) {
	values := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]*float64, len(row))
		for j := range row {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				continue
			}
			v := row[j]
			values[i][j] = &v
		}
	}
	return json.Marshal(struct {
		Columns []string     `json:"columns"`
		Values  [][]*float64 `json:"values"`
	}{m.Columns, values})
}

// SeriesPoint is one filtered value keyed by its source row index
type SeriesPoint struct {
	Index int      `json:"index"`
	Value *float64 `json:"value"`
}

// Series is the time-ordered line view of the selected column
type Series struct {
	Column string        `json:"column"`
	Points []SeriesPoint `json:"points"`
}

// ValueCount is one entry of the frequency ranking
type ValueCount struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Count int     `json:"count"`
}

// TopValues is the ranked bar view of the most frequent values
type TopValues struct {
	Column  string       `json:"column"`
	Entries []ValueCount `json:"entries"`
}

// DerivedAggregates is every read-only projection of one FilteredView.
// A failed view leaves its field nil and records the reason, the others still render.
type DerivedAggregates struct {
	RowCount int `json:"row_count"`

	Summary     *Summary           `json:"summary,omitempty"`
	Histogram   *Histogram         `json:"histogram,omitempty"`
	BoxPlot     *BoxPlot           `json:"boxplot,omitempty"`
	Correlation *CorrelationMatrix `json:"correlation,omitempty"`
	Series      *Series            `json:"series,omitempty"`
	TopValues   *TopValues         `json:"top_values,omitempty"`

	Errors map[string]string `json:"errors,omitempty"`
	causes map[string]error
}

// Aggregate names used as keys in Errors
const (
	ViewSummary     = "summary"
	ViewHistogram   = "histogram"
	ViewBoxPlot     = "boxplot"
	ViewCorrelation = "correlation"
	ViewSeries      = "series"
	ViewTopValues   = "top_values"
)

// Fail records why a view could not be computed
func (a *DerivedAggregates) Fail(view string, err error) {
	if a.Errors == nil {
		a.Errors = make(map[string]string)
		a.causes = make(map[string]error)
	}
	a.Errors[view] = err.Error()
	a.causes[view] = err
}

// Err returns the error recorded for a view, if any
func (a *DerivedAggregates) Err(view string) error {
	if a.causes == nil {
		return nil
	}
	return a.causes[view]
}

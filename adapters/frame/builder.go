// Package frame turns raw records into a typed dataset using gota's type detection.
package frame

import (
	"fmt"
	"log"

	"godash/domain/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingMarkers are the cell texts treated as missing values
var MissingMarkers = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "<nil>"}

// BuildDataset detects column types over the records (header row first) and builds a Dataset
func BuildDataset(source string, records [][]string) (*dataset.Dataset, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("source has no columns")
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("source has no data rows")
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingMarkers),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", df.Err)
	}

	names := df.Names()
	columns := make([]dataset.Column, len(names))
	for j, name := range names {
		col := df.Col(name)
		if col.Err != nil {
			return nil, fmt.Errorf("column %q: %w", name, col.Err)
		}

		text := make([]string, df.Nrow())
		for i := range text {
			text[i] = records[i+1][j]
		}

		column := dataset.Column{Name: name, Kind: kindOf(col.Type()), Text: text}
		if column.IsNumeric() {
			column.Numbers = col.Float()
		}
		columns[j] = column
	}

	ds, err := dataset.NewDataset(source, columns)
	if err != nil {
		return nil, err
	}
	log.Printf("[BuildDataset] %s: %d columns (%s), %d rows", source, len(columns), describeKinds(columns), ds.RowCount())
	return ds, nil
}

func kindOf(t series.Type) dataset.ColumnKind {
	switch t {
	case series.Int, series.Float:
		return dataset.KindNumeric
	case series.Bool:
		return dataset.KindBool
	default:
		return dataset.KindText
	}
}

func describeKinds(columns []dataset.Column) string {
	counts := make(map[dataset.ColumnKind]int)
	for _, c := range columns {
		counts[c.Kind]++
	}
	return fmt.Sprintf("%d numeric, %d bool, %d text",
		counts[dataset.KindNumeric], counts[dataset.KindBool], counts[dataset.KindText])
}

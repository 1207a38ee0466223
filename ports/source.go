package ports

import (
	"context"
)

// RecordSource reads a static table as raw records: the header row first, then data rows
type RecordSource interface {
	Name() string
	ReadRecords(ctx context.Context) ([][]string, error)
}

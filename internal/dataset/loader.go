package dataset

import (
	"context"
	"io"
	"sync"
	"time"

	"godash/adapters/excel"
	"godash/adapters/frame"
	"godash/adapters/postgres"
	"godash/domain/core"
	domainDataset "godash/domain/dataset"
	"godash/internal"
	"godash/ports"

	"golang.org/x/sync/singleflight"
)

// SourceOpener resolves a source string to a record reader
type SourceOpener func(ctx context.Context, source string) (ports.RecordSource, error)

// DefaultOpener reads postgres:// URLs through the table reader and anything else as a spreadsheet file
func DefaultOpener(sheet string) SourceOpener {
	return func(ctx context.Context, source string) (ports.RecordSource, error) {
		if postgres.IsSourceURL(source) {
			return postgres.OpenTableReader(ctx, source)
		}
		config := excel.DefaultReaderConfig(source)
		config.Sheet = sheet
		return excel.NewDataReader(config), nil
	}
}

// Loader reads each source once and keeps the resulting Dataset for the life of the process.
// Concurrent first loads of the same source share one read.
type Loader struct {
	open   SourceOpener
	logger *internal.Logger

	mu    sync.RWMutex
	cache map[string]*domainDataset.Dataset
	group singleflight.Group
}

// NewLoader creates a loader over the given opener
func NewLoader(open SourceOpener) *Loader {
	return &Loader{
		open:   open,
		logger: internal.DefaultLogger.With("Loader"),
		cache:  make(map[string]*domainDataset.Dataset),
	}
}

// Cached returns the dataset already loaded from source, if any
func (l *Loader) Cached(source string) (*domainDataset.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ds, ok := l.cache[source]
	return ds, ok
}

// Load returns the cached dataset for source, reading it on first use.
// Failures wrap core.ErrDataLoad and are not cached.
func (l *Loader) Load(ctx context.Context, source string) (*domainDataset.Dataset, error) {
	if ds, ok := l.Cached(source); ok {
		l.logger.Debug("cache hit for %s", source)
		return ds, nil
	}

	v, err, _ := l.group.Do(source, func() (interface{}, error) {
		if ds, ok := l.Cached(source); ok {
			return ds, nil
		}

		start := time.Now()
		ds, err := l.read(ctx, source)
		if err != nil {
			l.logger.Error("failed to load %s: %v", source, err)
			return nil, err
		}

		l.mu.Lock()
		l.cache[source] = ds
		l.mu.Unlock()

		l.logger.Info("loaded %s (%d rows, %d columns) in %s", source, ds.RowCount(), len(ds.ColumnNames()), time.Since(start).Round(time.Millisecond))
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domainDataset.Dataset), nil
}

func (l *Loader) read(ctx context.Context, source string) (*domainDataset.Dataset, error) {
	reader, err := l.open(ctx, source)
	if err != nil {
		return nil, core.NewDataLoadError(source, err)
	}
	if closer, ok := reader.(io.Closer); ok {
		defer closer.Close()
	}

	records, err := reader.ReadRecords(ctx)
	if err != nil {
		return nil, core.NewDataLoadError(reader.Name(), err)
	}

	ds, err := frame.BuildDataset(source, records)
	if err != nil {
		return nil, core.NewDataLoadError(reader.Name(), err)
	}
	return ds, nil
}

var (
	sharedOnce   sync.Once
	sharedLoader *Loader
)

// Shared returns the process-wide loader used by the web shell and CLI
func Shared(sheet string) *Loader {
	sharedOnce.Do(func() {
		sharedLoader = NewLoader(DefaultOpener(sheet))
	})
	return sharedLoader
}

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"godash/domain/core"
	"godash/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records [][]string
	err     error
	reads   *int32
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) ReadRecords(ctx context.Context) ([][]string, error) {
	atomic.AddInt32(f.reads, 1)
	return f.records, f.err
}

func fakeOpener(records [][]string, err error, reads *int32) SourceOpener {
	return func(ctx context.Context, source string) (ports.RecordSource, error) {
		return &fakeSource{records: records, err: err, reads: reads}, nil
	}
}

var scenarioRecords = [][]string{
	{"age", "score"},
	{"10", "1"},
	{"20", "2"},
	{"30", "3"},
	{"40", "4"},
}

func TestLoaderCachesPerSource(t *testing.T) {
	var reads int32
	loader := NewLoader(fakeOpener(scenarioRecords, nil, &reads))

	first, err := loader.Load(context.Background(), "train.csv")
	require.NoError(t, err)
	second, err := loader.Load(context.Background(), "train.csv")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&reads))
	assert.Equal(t, 4, first.RowCount())

	_, err = loader.Load(context.Background(), "other.csv")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&reads))
}

func TestLoaderConcurrentFirstLoad(t *testing.T) {
	var reads int32
	loader := NewLoader(fakeOpener(scenarioRecords, nil, &reads))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := loader.Load(context.Background(), "train.csv")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ds, ok := loader.Cached("train.csv")
	require.True(t, ok)
	assert.Equal(t, 4, ds.RowCount())
	assert.LessOrEqual(t, atomic.LoadInt32(&reads), int32(16))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&reads), int32(1))
}

func TestLoaderWrapsFailures(t *testing.T) {
	var reads int32
	loader := NewLoader(fakeOpener(nil, errors.New("disk on fire"), &reads))

	_, err := loader.Load(context.Background(), "train.csv")
	assert.ErrorIs(t, err, core.ErrDataLoad)

	_, ok := loader.Cached("train.csv")
	assert.False(t, ok)

	malformed := NewLoader(fakeOpener([][]string{{"a"}}, nil, &reads))
	_, err = malformed.Load(context.Background(), "header-only.csv")
	assert.ErrorIs(t, err, core.ErrDataLoad)

	broken := NewLoader(func(ctx context.Context, source string) (ports.RecordSource, error) {
		return nil, errors.New("bad url")
	})
	_, err = broken.Load(context.Background(), "postgres://x")
	assert.ErrorIs(t, err, core.ErrDataLoad)
}

func TestDefaultOpenerReadsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte("age,score,name\n10,1,a\n20,2,b\n"), 0o644))

	loader := NewLoader(DefaultOpener(""))
	ds, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "score", "name"}, ds.ColumnNames())

	_, err = loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, core.ErrDataLoad)
}

func TestSharedLoaderIsSingleton(t *testing.T) {
	assert.Same(t, Shared(""), Shared("ignored"))
}

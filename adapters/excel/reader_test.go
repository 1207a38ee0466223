package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecordsCSV(t *testing.T) {
	path := writeFile(t, "train.csv", "\ufeffage, score ,name\n10,1,ann\n20, 2 ,bob\n")

	rows, err := NewDataReader(DefaultReaderConfig(path)).ReadRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"age", "score", "name"},
		{"10", "1", "ann"},
		{"20", "2", "bob"},
	}, rows)
}

func TestReadRecordsTSV(t *testing.T) {
	path := writeFile(t, "train.tsv", "a\tb\n1\t2\n")

	rows, err := NewDataReader(ReaderConfig{FilePath: path}).ReadRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestReadRecordsCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"ragged rows", "a,b\n1,2,3\n"},
		{"header only", "a,b\n"},
		{"empty", ""},
		{"unterminated quote", "a,b\n\"1,2\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, "bad.csv", test.content)
			_, err := NewDataReader(DefaultReaderConfig(path)).ReadRecords(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := NewDataReader(DefaultReaderConfig(filepath.Join(t.TempDir(), "nope.csv"))).ReadRecords(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadRecordsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"age", "score", "note"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{10, 1.5, "x"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{20, 2.5}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader := NewDataReader(DefaultReaderConfig(path))
	assert.Equal(t, path, reader.Name())

	rows, err := reader.ReadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"age", "score", "note"}, rows[0])
	assert.Equal(t, []string{"10", "1.5", "x"}, rows[1])
	assert.Equal(t, []string{"20", "2.5", ""}, rows[2])
}

func TestReadRecordsCancelled(t *testing.T) {
	path := writeFile(t, "train.csv", "a\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataReader(DefaultReaderConfig(path)).ReadRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package main

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"godash/domain/dataset"
	"godash/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericColumn(name string, values ...float64) dataset.Column {
	text := make([]string, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			text[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return dataset.Column{Name: name, Kind: dataset.KindNumeric, Numbers: values, Text: text}
}

func scenario(t *testing.T) *dashboard.Controller {
	t.Helper()
	disableColor()
	ds, err := dataset.NewDataset("scenario.csv", []dataset.Column{
		numericColumn("age", 10, 20, 30, 40),
		numericColumn("score", 1, 2, 3, 4),
	})
	require.NoError(t, err)
	c, err := dashboard.NewController(ds, dashboard.DefaultOptions())
	require.NoError(t, err)
	return c
}

func TestRenderColumns(t *testing.T) {
	c := scenario(t)

	var buf bytes.Buffer
	renderColumns(&buf, c.Dataset(), c.Columns())

	out := buf.String()
	assert.Contains(t, out, "scenario.csv (4 rows)")
	assert.Regexp(t, `age\s+10\s+40`, out)
	assert.Regexp(t, `score\s+1\s+4`, out)
}

func TestRenderViewScenario(t *testing.T) {
	c := scenario(t)
	view, err := c.Compute(dataset.FilterParameters{
		Column:  "age",
		Range:   dataset.Range{Low: 15, High: 35},
		ShowRaw: true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderView(&buf, view)

	out := buf.String()
	assert.Contains(t, out, "Filter: age in [15, 35]")
	assert.Contains(t, out, "Rows: 2 of 4")
	assert.Regexp(t, `mean\s+25`, out)
	assert.Regexp(t, `(?m)^20\s+1\s+#+`, out)
	assert.Regexp(t, `(?m)^30\s+1\s+#+`, out)
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "Filtered data preview")

	assert.Contains(t, out, "Top 2 most frequent values")
	assert.Contains(t, out, "Boxplot")
	assert.Regexp(t, `range\s+20 \.\. 30`, out)
	assert.Regexp(t, `outliers\s+0`, out)
	assert.Contains(t, out, "▁█  2 points")
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", sparkline(nil))
	assert.Equal(t, "▁▁▁", sparkline([]float64{5, 5, 5}))
	assert.Equal(t, "▁█", sparkline([]float64{1, 9}))

	long := make([]float64, 600)
	for i := range long {
		long[i] = float64(i)
	}
	line := []rune(sparkline(long))
	assert.Len(t, line, sparkWidth)
	assert.Equal(t, '▁', line[0])
	assert.Equal(t, '█', line[len(line)-1])
}

func TestRenderViewShowsUnavailableViews(t *testing.T) {
	c := scenario(t)
	view, err := c.Compute(dataset.FilterParameters{Column: "age", Range: dataset.Range{Low: 20, High: 20}})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderView(&buf, view)

	out := buf.String()
	assert.Contains(t, out, "Rows: 1 of 4")
	assert.Contains(t, out, "insufficient data")
	assert.NotContains(t, out, "Filtered data preview")
}

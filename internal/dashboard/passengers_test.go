package dashboard

import (
	"math"
	"testing"

	"godash/adapters/frame"
	"godash/domain/dataset"
	"godash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passengerController(t *testing.T) *Controller {
	t.Helper()
	records := testkit.NewPassengerGenerator(testkit.DefaultPassengerConfig()).Records()
	ds, err := frame.BuildDataset("passengers.csv", records)
	require.NoError(t, err)
	c, err := NewController(ds, DefaultOptions())
	require.NoError(t, err)
	return c
}

func TestPassengerTableEndToEnd(t *testing.T) {
	c := passengerController(t)

	assert.Equal(t,
		dataset.NumericColumnSet{"PassengerId", "Survived", "Pclass", "Age", "SibSp", "Parch", "Fare"},
		c.NumericColumns())

	params := dataset.FilterParameters{Column: "Age", Range: dataset.Range{Low: 20, High: 40}, ShowRaw: true}
	view, err := c.Compute(params)
	require.NoError(t, err)

	age, _ := c.Dataset().Column("Age")
	for _, row := range view.Filtered.Rows {
		v := age.Numbers[row]
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 20.0)
		assert.LessOrEqual(t, v, 40.0)
	}

	aggs := view.Aggregates
	assert.Empty(t, aggs.Errors)
	require.NotNil(t, aggs.Histogram)
	assert.LessOrEqual(t, len(aggs.Histogram.Bins), 50)
	require.NotNil(t, aggs.TopValues)
	assert.LessOrEqual(t, len(aggs.TopValues.Entries), 10)
	require.NotNil(t, aggs.Correlation)
	assert.Len(t, aggs.Correlation.Columns, 7)
	for i := range aggs.Correlation.Columns {
		assert.InDelta(t, 1.0, aggs.Correlation.Values[i][i], 1e-9)
	}

	require.NotNil(t, view.Preview)
	assert.Len(t, view.Preview.Rows, DefaultPreviewRows)
	assert.True(t, view.Preview.Truncated)
}

func TestPassengerTableWideningNeverDropsRows(t *testing.T) {
	c := passengerController(t)

	narrow, err := c.Compute(dataset.FilterParameters{Column: "Fare", Range: dataset.Range{Low: 10, High: 30}})
	require.NoError(t, err)
	wide, err := c.Compute(dataset.FilterParameters{Column: "Fare", Range: dataset.Range{Low: 5, High: 60}})
	require.NoError(t, err)

	assert.Subset(t, wide.Filtered.Rows, narrow.Filtered.Rows)
	assert.GreaterOrEqual(t, wide.RowCount, narrow.RowCount)
}

package dashboard

import (
	"bytes"
	"log"
	"testing"

	"godash/domain/dataset"
	"godash/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTracesEachRecompute(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	c := scenarioController(t)
	c.logger = internal.NewLogger(internal.LogLevelTrace).With("Controller")

	view, err := c.Compute(dataset.FilterParameters{Column: "age", Range: dataset.Range{Low: 15, High: 35}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[TRACE] [Controller] view "+view.ID.String())
	assert.Contains(t, out, "age in [15, 35] kept 2/4 rows, 0 failed views")

	buf.Reset()
	c.logger = internal.NewLogger(internal.LogLevelInfo).With("Controller")
	_, err = c.Compute(dataset.FilterParameters{Column: "age", Range: dataset.Range{Low: 15, High: 35}})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "[TRACE]")
}

package insights

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	html, err := Load("")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<ul>")
	assert.Equal(t, 4, strings.Count(out, "<li>"))
	assert.Contains(t, out, "correlations can be identified")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.md")
	require.NoError(t, os.WriteFile(path, []byte("## Fares\n\n**First class** pays more. <script>alert(1)</script>\n"), 0o644))

	html, err := Load(path)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "<strong>First class</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

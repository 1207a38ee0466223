// Package insights renders the dashboard's "Key Insights" notes from markdown.
package insights

import (
	"fmt"
	"html/template"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// DefaultMarkdown is shown when no insights file is configured
const DefaultMarkdown = `- Interactive filters allow exploration of numeric features
- Distribution and spread visible via histogram and boxplot
- Strong correlations can be identified from the heatmap
- Dashboard supports dynamic exploration of the dataset
`

// Render converts markdown to HTML; raw HTML in the source is skipped
func Render(md []byte) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.HrefTargetBlank,
	})
	return template.HTML(markdown.Render(doc, renderer))
}

// Load renders the insights file at path, or DefaultMarkdown when path is empty
func Load(path string) (template.HTML, error) {
	if path == "" {
		return Render([]byte(DefaultMarkdown)), nil
	}
	md, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read insights file: %w", err)
	}
	return Render(md), nil
}

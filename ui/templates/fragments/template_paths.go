// Package fragments provides template name constants for the dashboard templates
package fragments

// Template names as registered by the server
const (
	IndexPage    = "index.html"
	PreviewTable = "preview.html"
	SummaryTable = "summary.html"
)

// All lists every template the server expects to find
func All() []string {
	return []string{IndexPage, PreviewTable, SummaryTable}
}

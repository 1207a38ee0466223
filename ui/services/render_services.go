package services

import (
	"html/template"
	"log"
	"strings"

	"godash/domain/aggregates"
	"godash/domain/dataset"
	"godash/ui/templates/fragments"
)

// RenderService renders HTML fragments swapped into the dashboard page
type RenderService struct {
	templates *template.Template
}

func NewRenderService(templates *template.Template) *RenderService {
	return &RenderService{
		templates: templates,
	}
}

// RenderPreview renders the raw-data table; a nil preview renders nothing
func (s *RenderService) RenderPreview(preview *dataset.PreviewTable) string {
	if preview == nil {
		return ""
	}

	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, fragments.PreviewTable, preview); err != nil {
		log.Printf("[ERROR] Failed to render preview template: %v", err)
		return `<div class="panel-error">Error rendering data preview</div>`
	}
	return buf.String()
}

// RenderSummary renders the describe table, or the recorded reason it is missing
func (s *RenderService) RenderSummary(aggs *aggregates.DerivedAggregates) string {
	data := struct {
		Summary *aggregates.Summary
		Error   string
	}{}
	if aggs != nil {
		data.Summary = aggs.Summary
		data.Error = aggs.Errors[aggregates.ViewSummary]
	}

	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, fragments.SummaryTable, data); err != nil {
		log.Printf("[ERROR] Failed to render summary template: %v", err)
		return `<div class="panel-error">Error rendering summary</div>`
	}
	return buf.String()
}

package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"godash/domain/dataset"
	apperrors "godash/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleIndex renders the dashboard with the initial view embedded for the first paint
func (s *Server) handleIndex(c *gin.Context) {
	params := s.controller.DefaultParameters()
	view, err := s.controller.Compute(params)
	if err != nil {
		log.Printf("[handleIndex] Initial compute failed: %v", err)
		respondError(c, err)
		return
	}

	initial, err := json.Marshal(view)
	if err != nil {
		respondError(c, apperrors.Wrap(err, "failed to encode initial view"))
		return
	}

	ds := s.controller.Dataset()
	data := map[string]interface{}{
		"Title":       s.opts.Title,
		"Subtitle":    s.opts.Subtitle,
		"Source":      ds.Source,
		"TotalRows":   ds.RowCount(),
		"Columns":     s.controller.Columns(),
		"Params":      params,
		"Insights":    s.opts.Insights,
		"Summary":     template.HTML(s.render.RenderSummary(view.Aggregates)),
		"InitialView": template.JS(initial),
	}
	s.renderTemplate(c, "index.html", data)
}

func (s *Server) handleColumns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"columns":  s.controller.Columns(),
		"defaults": s.controller.DefaultParameters(),
	})
}

// handleView runs one full recompute for the widget state in the query string
func (s *Server) handleView(c *gin.Context) {
	params, err := s.parseParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := s.controller.Compute(params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handlePreviewFragment(c *gin.Context) {
	params, err := s.parseParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if !params.ShowRaw {
		renderFragment(c, "")
		return
	}

	view, err := s.controller.Compute(params)
	if err != nil {
		respondError(c, err)
		return
	}
	renderFragment(c, s.render.RenderPreview(view.Preview))
}

func (s *Server) handleSummaryFragment(c *gin.Context) {
	params, err := s.parseParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := s.controller.Compute(params)
	if err != nil {
		respondError(c, err)
		return
	}
	renderFragment(c, s.render.RenderSummary(view.Aggregates))
}

func (s *Server) handleHealth(c *gin.Context) {
	ds := s.controller.Dataset()
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"source":          ds.Source,
		"rows":            ds.RowCount(),
		"numeric_columns": len(s.controller.NumericColumns()),
		"loaded_at":       ds.LoadedAt,
	})
}

// parseParams reads column, low, high and raw from the query string.
// Missing values fall back to the initial widget state for the chosen column.
func (s *Server) parseParams(c *gin.Context) (dataset.FilterParameters, error) {
	params := dataset.FilterParameters{
		Column: strings.TrimSpace(c.Query("column")),
	}
	if params.Column == "" {
		params.Column = s.controller.DefaultParameters().Column
	}

	bounds, err := s.controller.Bounds(params.Column)
	if err != nil && !s.controller.NumericColumns().Contains(params.Column) {
		return params, err
	}
	params.Range = bounds

	if raw, ok := c.GetQuery("low"); ok && raw != "" {
		v, err := parseBound(raw)
		if err != nil {
			return params, apperrors.InvalidInput("low must be a finite number")
		}
		params.Range.Low = v
	}
	if raw, ok := c.GetQuery("high"); ok && raw != "" {
		v, err := parseBound(raw)
		if err != nil {
			return params, apperrors.InvalidInput("high must be a finite number")
		}
		params.Range.High = v
	}

	if raw, ok := c.GetQuery("raw"); ok && raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			// HTML checkboxes submit "on"
			show = raw == "on"
		}
		params.ShowRaw = show
	}
	return params, nil
}

func parseBound(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// respondError writes {"error", "code"} with the status derived from the error
func respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[respondError] %s: %v", code, err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}

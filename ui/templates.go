package ui

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a full-page template with the given data
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	// Render to a buffer first so a failing template never produces a half-written page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("[renderTemplate] Template error for %s: %v", templateName, err)
		log.Printf("[renderTemplate] Template data type: %T", data)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	content := buf.String()
	if !strings.Contains(content, "</html>") {
		log.Printf("[renderTemplate] WARNING: rendered template %s appears truncated, missing </html> tag", templateName)
	}

	writeHTML(c, buf.Bytes())
}

// renderFragment writes an already rendered HTML fragment
func renderFragment(c *gin.Context, html string) {
	writeHTML(c, []byte(html))
}

func writeHTML(c *gin.Context, body []byte) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	if _, err := c.Writer.Write(body); err != nil {
		log.Printf("[writeHTML] Error writing response: %v", err)
	}
}

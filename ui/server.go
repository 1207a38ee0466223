package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"time"

	"godash/internal/dashboard"
	"godash/ui/services"
	"godash/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// Options configures the web shell
type Options struct {
	Title    string
	Subtitle string
	GinMode  string
	Insights template.HTML
	Assets   fs.FS // embedded assets when nil
}

// Server is the gin shell around the view controller
type Server struct {
	router     *gin.Engine
	controller *dashboard.Controller
	templates  *template.Template
	render     *services.RenderService
	assets     fs.FS
	opts       Options
}

// NewServer creates the web server and parses its templates
func NewServer(controller *dashboard.Controller, opts Options) (*Server, error) {
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}
	if opts.Title == "" {
		opts.Title = "Interactive Dashboard"
	}
	assets := opts.Assets
	if assets == nil {
		assets = embeddedFiles
	}

	s := &Server{
		router:     gin.New(),
		controller: controller,
		assets:     assets,
		opts:       opts,
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	s.render = services.NewRenderService(s.templates)

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) parseTemplates() error {
	funcMap := template.FuncMap{
		"fmtNum": func(v float64) string {
			return strconv.FormatFloat(v, 'g', 6, 64)
		},
		// exactNum round-trips through ParseFloat, for widget values the page sends back
		"exactNum": func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
	}

	templatesFS, err := fs.Sub(s.assets, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	s.templates, err = template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html", "fragments/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	for _, name := range fragments.All() {
		if s.templates.Lookup(name) == nil {
			return fmt.Errorf("template %s not found", name)
		}
	}
	log.Printf("[TemplateInit] Parsed templates: %s", s.templates.DefinedTemplates())
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/columns", s.handleColumns)
	api.GET("/view", s.handleView)
	api.GET("/fragments/preview", s.handlePreviewFragment)
	api.GET("/fragments/summary", s.handleSummaryFragment)
}

// Handler exposes the router for tests and custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer wraps the router in an http.Server bound to addr
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

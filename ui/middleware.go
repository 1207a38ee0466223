package ui

import (
	"io/fs"
	"log"
	"net/http"

	"godash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware and static assets
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())

	staticFS, err := fs.Sub(s.assets, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	log.Printf("[Static] Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}

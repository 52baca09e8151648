// Package api provides the read-only HTTP API over the gallery data set,
// plus static hosting for the stored images.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yura9011/promptfolio/internal/gallery"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *gallery.Store
	imagesDir string
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *gallery.Store, imagesDir string, logger *slog.Logger) *Server {
	s := &Server{
		store:     store,
		imagesDir: imagesDir,
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/images", func(r chi.Router) {
			r.Get("/", s.handleListImages)
			r.Get("/{id}", s.handleGetImage)
		})
		r.Get("/categories", s.handleListCategories)
		r.Get("/stats", s.handleStats)
	})

	// Stored images and thumbnails.
	s.router.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.imagesDir))))
}

// Package api provides the HTTP API server and handlers for MarkStash.
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/config"
	"github.com/markstashapp/markstash-server/internal/logger"
	"github.com/markstashapp/markstash-server/internal/sse"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog    *catalog.Catalog
	sseHandler *sse.Handler
	router     *chi.Mux
	api        huma.API
	log        *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, cat *catalog.Catalog, sseHandler *sse.Handler, log *logger.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("MarkStash API", "1.0.0")
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		catalog:    cat,
		sseHandler: sseHandler,
		router:     router,
		api:        api,
		log:        log,
	}

	s.registerHealthRoutes()
	s.registerFolderRoutes()
	s.registerBookmarkRoutes()
	s.registerSelectionRoutes()
	s.registerSettingsRoutes()

	// SSE bypasses huma: it is a long-lived stream, not a typed response.
	if sseHandler != nil {
		router.Get("/api/v1/sync/stream", sseHandler.ServeHTTP)
	}

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" doc:"Human-readable result"`
}

// MessageOutput wraps MessageResponse for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// Package core provides the API chassis for the Notificable backend.
// It creates a chi router and enforces cross-cutting concerns -- panic
// recovery, request correlation, logging, and CORS -- before requests reach
// domain-specific handlers.
package core

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notificable/internal/config"
)

// Server encapsulates the dependencies of the HTTP API, allowing for easy
// injection during testing and distinct configuration for different
// environments.
type Server struct {
	Config *config.Config
	Logger *slog.Logger

	// APIRouteRegistrars are invoked under the /api route group when
	// MountRoutes runs. Populated by the application entry point; this
	// indirection avoids import cycles between core and handler packages.
	APIRouteRegistrars []func(chi.Router)

	router *chi.Mux
}

// NewServer validates dependencies and prepares the server for route
// mounting. The caller is responsible for appending route registrars and
// calling MountRoutes afterwards; this separation lets tests customize
// route registration.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		router: chi.NewRouter(),
	}, nil
}

// Handler returns the http.Handler for the router, for use by
// http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration in tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

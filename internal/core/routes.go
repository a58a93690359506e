package core

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"notificable/internal/types"
)

// MountRoutes registers the global middleware chain and the /api route
// group. Domain handler routes are registered via APIRouteRegistrars,
// populated by the application entry point before this call.
func (s *Server) MountRoutes() {
	s.registerGlobalMiddleware()

	s.router.Route("/api", func(r chi.Router) {
		for _, registrar := range s.APIRouteRegistrars {
			registrar(r)
		}
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Error(w, r, types.NewAppError(types.ErrCodeNotFoundRoute, "route not found", nil))
	})
}

// registerGlobalMiddleware applies middleware in strict order.
//
// Ordering rationale:
//  1. Recoverer     - outermost, catches all panics.
//  2. RequestID     - correlation ID for the logger below.
//  3. RequestLogger - structured request logging.
//  4. CORS          - browser security headers, preflight short-circuit.
func (s *Server) registerGlobalMiddleware() {
	s.router.Use(s.Recoverer)
	s.router.Use(RequestIDMiddleware)
	s.router.Use(RequestLogger(s.Logger))
	s.router.Use(NewCORSMiddleware(s.corsAllowedOrigins()))
}

// corsAllowedOrigins returns the CORS allowed origins from configuration,
// defaulting to the permissive wildcard.
func (s *Server) corsAllowedOrigins() []string {
	if s.Config != nil && len(s.Config.Security.CorsAllowedOrigins) > 0 {
		return s.Config.Security.CorsAllowedOrigins
	}
	return []string{"*"}
}

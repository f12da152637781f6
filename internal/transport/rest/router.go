package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/scriptbook-backend/internal/config"
	"github.com/heartmarshall/scriptbook-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Scripts *ScriptHandler
	Health  *HealthHandler
	CORS    config.CORSConfig
	Logger  *slog.Logger
}

// NewRouter builds the HTTP handler tree. Script routes are served both at
// the root and under /api.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Default(deps.Logger, deps.CORS))
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	if deps.Health != nil {
		r.Get("/live", deps.Health.Live)
		r.Get("/ready", deps.Health.Ready)
		r.Get("/health", deps.Health.Health)
	}

	scripts := func(r chi.Router) {
		r.Route("/scripts", func(r chi.Router) {
			r.Get("/", deps.Scripts.List)
			r.Post("/", deps.Scripts.Create)
			r.Get("/search", deps.Scripts.Search)
			r.Get("/{id}", deps.Scripts.Get)
			r.Put("/{id}", deps.Scripts.Update)
			r.Delete("/{id}", deps.Scripts.Delete)
		})
	}

	scripts(r)
	r.Route("/api", scripts)

	return r
}

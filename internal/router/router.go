// Package router assembles the HTTP handler tree: middleware, CORS and routes
package router

import (
	"net/http"
	"time"

	"github.com/Lixing-Zhang/platos-api/internal/config"
	"github.com/Lixing-Zhang/platos-api/internal/handlers"
	"github.com/Lixing-Zhang/platos-api/internal/middleware"
	"github.com/Lixing-Zhang/platos-api/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by New
type Handlers struct {
	Health *handlers.HealthHandler
	Info   *handlers.InfoHandler
	Platos *handlers.PlatoHandler
}

// NewHandlers builds every handler over the given plato service
func NewHandlers(cfg *config.Config, platoService *service.PlatoService, log zerolog.Logger) Handlers {
	return Handlers{
		Health: handlers.NewHealthHandler(cfg.App.Version, log),
		Info:   handlers.NewInfoHandler(cfg.App.Version, cfg.App.Environment, log),
		Platos: handlers.NewPlatoHandler(platoService, log),
	}
}

// New creates the router with middleware and all routes registered
func New(cfg *config.Config, log zerolog.Logger, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.Info.Root)
	r.Get("/health", h.Health.ServeHTTP)

	r.Route(cfg.App.APIPrefix, func(r chi.Router) {
		r.Get("/test", h.Info.Test)

		r.Route("/platos", func(r chi.Router) {
			r.Get("/", h.Platos.ListPlatos)
			r.Post("/", h.Platos.CreatePlato)
			r.Get("/{plato_id}", h.Platos.GetPlato)
			r.Put("/{plato_id}", h.Platos.UpdatePlato)
			r.Delete("/{plato_id}", h.Platos.DeletePlato)
		})
	})

	return r
}

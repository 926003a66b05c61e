package routes

import (
	"net/http"

	"github.com/Jfgm299/centro-control-personal/internal/api"
	"github.com/Jfgm299/centro-control-personal/internal/db"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the chi router: global middleware, health check,
// and the versioned API surface.
func RegisterRoutes(deps *api.Dependencies) http.Handler {

	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB))

	RegisterAPIRoutes(r, deps)

	return r
}

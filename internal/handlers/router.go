package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/food-dashboard/internal/config"
	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router is the dashboard's HTTP surface
type Router struct {
	chi.Router
	Page *DashboardHandler
}

// NewRouter wires the HTML dashboard, the JSON action API and the health
// check around a single dashboard
func NewRouter(dash *dashboard.Dashboard, auth config.AuthConfig, log *slog.Logger) *Router {
	healthHandler := NewHealthHandler(dash, log)
	pageHandler := NewDashboardHandler(dash, log)
	foodHandler := NewFoodHandler(dash, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler.ServeHTTP)

	// HTML dashboard; the page itself is public, its form posts share the
	// API keys
	r.Get("/", pageHandler.Index)
	r.Group(func(r chi.Router) {
		if len(auth.APIKeys) > 0 {
			r.Use(middleware.APIKeyAuth(auth))
		}

		r.Post("/modals/add", pageHandler.ToggleAddModal)
		r.Post("/modals/edit", pageHandler.ToggleEditModal)
		r.Post("/foods", pageHandler.AddFood)
		r.Post("/foods/editing", pageHandler.UpdateFood)
		r.Post("/foods/{foodId}/edit", pageHandler.EditFood)
		r.Post("/foods/{foodId}/delete", pageHandler.DeleteFood)
	})

	// JSON action API
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", middleware.APIKeyHeader},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		if len(auth.APIKeys) > 0 {
			r.Use(middleware.APIKeyAuth(auth))
		}

		r.Get("/state", foodHandler.GetState)
		r.Post("/foods", foodHandler.AddFood)
		r.Post("/foods/{foodId}/edit", foodHandler.EditFood)
		r.Delete("/foods/{foodId}", foodHandler.DeleteFood)
		r.Put("/editing", foodHandler.UpdateFood)
		r.Post("/modals/add/toggle", foodHandler.ToggleAddModal)
		r.Post("/modals/edit/toggle", foodHandler.ToggleEditModal)
	})

	return &Router{Router: r, Page: pageHandler}
}

var _ http.Handler = (*Router)(nil)

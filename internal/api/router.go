package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nearby-fitness-service/internal/api/docs"
	"nearby-fitness-service/internal/api/handlers"
	"nearby-fitness-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of where the data came from).
func NewRouter(svc *services.ProximityService) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	nearby := &handlers.NearbyHandler{Service: svc}

	r.Get("/health", handlers.Health)
	r.Get("/api-docs", docs.Redirect)
	r.Get("/api-docs/", docs.Redirect)
	r.Get(docs.Path, docs.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/marathon", nearby.Marathons)
		r.Get("/gyms", nearby.Gyms)
		r.Get("/gymbros", nearby.GymBuddies)
	})

	return r
}

/*
server.go - HTTP router and middleware configuration

ROUTER: chi
  Lightweight, context-based, RESTful route patterns.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. CORS:       Cross-origin requests for frontend tooling

SECURITY NOTE:
  No authentication middleware; auth lives in front of this service.
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/derive", h.DeriveHours)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Get("/{id}/hours", h.GetHours)
			r.Get("/{id}/clock-events", h.ListClockEvents)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.ListShifts)
			r.Post("/", h.CreateShift)
		})

		r.Route("/clock-events", func(r chi.Router) {
			r.Post("/", h.CreateClockEvent)
		})

		r.Route("/concepts", func(r chi.Router) {
			r.Get("/", h.ListConcepts)
			r.Delete("/{id}", h.DeleteConcept)
		})

		r.Post("/seed", h.SeedDemo)
	})

	return r
}

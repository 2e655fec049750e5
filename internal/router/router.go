// Package router sets up all HTTP routes and middleware chains for the
// portal API. Content reads are public; engagement and uploads require
// an authenticated viewer.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthportal/internal/auth"
	"healthportal/internal/handlers"
	"healthportal/internal/metrics"
	"healthportal/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(verifier *auth.Verifier, collector *metrics.Collector, articles *handlers.Articles, health *handlers.Health, doctors *handlers.Doctors, media *handlers.Media) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(collector))
	r.Use(middleware.LoadViewer(verifier))

	// Health check and metrics — no auth.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", articles.List)
		r.Post("/", articles.Create)

		r.Get("/doctor/{clerkUserId}", articles.ListByDoctor)
		r.Get("/doctor/{clerkUserId}/others", articles.ListExcludingDoctor)

		r.Get("/{id}", articles.Get)
		r.Put("/{id}", articles.Update)
		r.Patch("/{id}/publish", articles.Publish)
		r.Delete("/{id}", articles.Delete)

		// Engagement requires a verified viewer identity.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireViewer)
			r.Post("/{id}/like", articles.Like)
			r.Delete("/{id}/like", articles.Unlike)
		})
	})

	r.Post("/health/analyze", health.Analyze)

	r.Route("/doctors", func(r chi.Router) {
		r.Get("/", doctors.List)
		r.Get("/{clerkUserId}", doctors.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireViewer)
		r.Post("/media", media.Upload)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(CORS(h.cors))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes
	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", metrics.Handler(h.registry))

	router.Route("/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// profile routes
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.getProfile)
			r.Get("/{id}", h.getProfile)
			r.Put("/", h.updateProfile)
			r.Put("/{id}", h.updateProfile)
			r.Patch("/", h.updateProfile)
			r.Patch("/{id}", h.updateProfile)
		})
	})

	router.Route("/cats/breeds", func(r chi.Router) {
		r.Get("/", h.getBreeds)
		r.Get("/search", h.searchBreeds)
		r.Get("/{breed_id}", h.getBreedByID)
	})

	router.Route("/images", func(r chi.Router) {
		r.Get("/", h.getImageByID)
		r.Get("/{image_id}", h.getImageByID)
	})

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

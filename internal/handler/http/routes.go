// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRealIP, h.withTraceID, h.withLogging, middleware.Recoverer, h.withThrottle)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Get("/api/version", h.getServerVersion)
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/providers", h.listProviders)
		r.Get("/oauth/{provider}", h.beginOAuth)
		r.Get("/oauth/{provider}/callback", h.oauthCallback)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
		})
	})

	router.Route("/api/user", func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/password", h.changePassword)
		r.Get("/identities", h.listIdentities)
		r.Post("/identities/{provider}", h.beginLink)
		r.Delete("/identities/{provider}", h.unlink)
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth, h.requireRole(models.RoleAdmin))
		r.Get("/providers", h.adminListProviders)
		r.Put("/providers/{name}", h.adminUpsertProvider)
		r.Get("/users", h.adminListUsers)
		r.Put("/users/{id}/role", h.adminSetRole)
		r.Put("/users/{id}/active", h.adminSetActive)
	})

	router.NotFound(h.notFound)
	// unsupported methods answer 404 so probing does not reveal which paths exist
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, service.ErrNotFound)
}

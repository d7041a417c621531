// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header and hands it to
// [service.SessionService.Authorize], which verifies the token and re-reads
// the account so deactivated users are rejected on every request. On success
// the principal is stored in the request context (see
// [utils.GetPrincipalFromContext]) and the request logger gains a user_id
// field.
//
// Requests are rejected with 401 Unauthorized when the header is absent or
// malformed, the token is invalid or expired, or the account is inactive.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthorized, ErrEmptyAuthorizationHeader))
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthorized, ErrInvalidAuthorizationHeader))
			return
		}

		ctx := r.Context()
		principal, err := h.services.SessionService.Authorize(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", principal.UserID)
		})
		ctx = l.WithContext(utils.WithPrincipal(ctx, principal))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole rejects authenticated principals below role with 403
// Forbidden. It must run after auth.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				h.writeError(w, r, service.ErrUnauthorized)
				return
			}
			if !service.HasRole(principal.Role, role) {
				logger.FromRequest(r).Warn().Str("role", principal.Role.String()).
					Str("required", role.String()).Msg("insufficient role")
				h.writeError(w, r, service.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// principalFrom returns the principal stored by auth.
func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: %w", service.ErrUnauthorized, errNoPrincipal)
	}
	return principal, nil
}

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
)

// decode reads a JSON body into dst and validates it. Every failure is an
// InvalidRequest.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidRequest, err)
	}
	if err := h.validator.Validate(r.Context(), dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidRequest, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.RateLimitService.AllowRegister(ctx, clientIP(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.RateLimitService.AllowLogin(ctx, req.Email, clientIP(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.SessionService.IssueToken(r.Context(), user.Principal())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
		User:        user,
	}, status)
}

// logout only acknowledges the request. Session tokens are stateless and
// expire on their own; clients drop them.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("user logged out")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), principal.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

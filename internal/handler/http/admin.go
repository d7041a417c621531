// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) adminListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.services.ProviderService.ListAdmin(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, providers, http.StatusOK)
}

func (h *Handler) adminUpsertProvider(w http.ResponseWriter, r *http.Request) {
	var update models.ProviderConfigUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidRequest, err))
		return
	}
	update.Name = chi.URLParam(r, "name")

	provider, err := h.services.ProviderService.Upsert(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, provider, http.StatusOK)
}

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit", 50)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) adminSetRole(w http.ResponseWriter, r *http.Request) {
	actor, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.RoleUpdateRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.SetRole(r.Context(), actor, chi.URLParam(r, "id"), req.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) adminSetActive(w http.ResponseWriter, r *http.Request) {
	actor, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ActiveUpdateRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.SetActive(r.Context(), actor, chi.URLParam(r, "id"), *req.Active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, user, http.StatusOK)
}

func queryUint(r *http.Request, name string, fallback uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", service.ErrInvalidRequest, name)
	}
	return v, nil
}

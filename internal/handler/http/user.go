// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err := h.decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), principal.UserID, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listIdentities(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	identities, err := h.services.LinkService.ListLinkedIdentities(r.Context(), principal.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, identities, http.StatusOK)
}

func (h *Handler) unlink(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.LinkService.UnlinkIdentity(r.Context(), principal.UserID, chi.URLParam(r, "provider")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

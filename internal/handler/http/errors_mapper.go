// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// errorStatusMap is matched in order; wrapped errors can match several
// entries and the first one wins. Unauthorized must precede
// AccountDisabled so inactive sessions answer 401.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrAccountDisabled, http.StatusForbidden},
	{service.ErrRateLimited, http.StatusTooManyRequests},
	{service.ErrProviderNotFound, http.StatusNotFound},
	{service.ErrProviderDisabled, http.StatusBadRequest},
	{service.ErrProviderUnavailable, http.StatusBadGateway},
	{service.ErrIdentityConflict, http.StatusConflict},
	{service.ErrDuplicateLink, http.StatusConflict},
	{service.ErrLastSignInMethod, http.StatusConflict},
	{service.ErrInvalidRedirect, http.StatusBadRequest},
	{service.ErrInvalidState, http.StatusBadRequest},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidEmail, http.StatusBadRequest},
	{service.ErrEmailTaken, http.StatusConflict},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrInvalidRequest, http.StatusBadRequest},
	{service.ErrInternal, http.StatusInternalServerError},
}

// statusFromError returns the HTTP status of err and the sentinel it
// matched, or 500 and nil for errors outside the taxonomy.
func statusFromError(err error) (int, error) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status, entry.err
		}
	}
	return http.StatusInternalServerError, nil
}

// publicMessage never echoes wrapped causes, which may carry upstream URLs
// or storage details. Weak passwords and invalid requests are the exception:
// their details come from local validation only.
func publicMessage(err, matched error, status int) string {
	var weak *service.WeakPasswordError
	switch {
	case status == http.StatusInternalServerError || matched == nil:
		return http.StatusText(http.StatusInternalServerError)
	case errors.As(err, &weak):
		return weak.Error()
	case errors.Is(matched, service.ErrInvalidRequest):
		return err.Error()
	default:
		return matched.Error()
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, matched := statusFromError(err)
	kind := service.KindOf(err)
	if matched == nil {
		kind = service.KindOf(service.ErrInternal)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("kind", kind).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error: models.ErrorBody{Kind: kind, Message: publicMessage(err, matched, status)},
	}, status)
}

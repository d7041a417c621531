// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.services.ProviderService.ListPublic(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, providers, http.StatusOK)
}

func (h *Handler) beginOAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.RateLimitService.AllowOAuth(ctx, clientIP(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	start, err := h.services.OAuthService.BeginAuthorization(ctx,
		chi.URLParam(r, "provider"), r.URL.Query().Get("redirect"), "")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setStateNonce(w, start)
	http.Redirect(w, r, start.URL, http.StatusFound)
}

// oauthCallback completes a provider round trip.
//
// The state must come back with the nonce cookie set when the flow started,
// so a state handed to another browser is rejected. The cookie is cleared on
// every callback.
//
// Failures before the state is verified are answered with a JSON error,
// since there is no trusted redirect target yet. Afterwards the browser is
// always sent back to the redirect carried by the state: with the session
// token, the linked provider or the error kind in the URL fragment.
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")
	query := r.URL.Query()

	if err := h.services.RateLimitService.AllowOAuth(ctx, clientIP(r)); err != nil {
		h.writeError(w, r, err)
		return
	}

	var nonce string
	if cookie, err := r.Cookie(stateNonceCookie); err == nil {
		nonce = cookie.Value
	}
	h.clearStateNonce(w)

	result, err := h.services.OAuthService.HandleCallback(ctx, provider, query.Get("code"), query.Get("state"), nonce)
	if err != nil {
		if result.Redirect == "" {
			h.writeError(w, r, err)
			return
		}
		logger.FromRequest(r).Warn().Err(err).Str("provider", provider).Msg("provider callback failed")
		http.Redirect(w, r, withFragment(result.Redirect, url.Values{"error": {service.KindOf(err)}}), http.StatusFound)
		return
	}

	if result.Linked {
		http.Redirect(w, r, withFragment(result.Redirect, url.Values{"linked": {provider}}), http.StatusFound)
		return
	}

	expiresIn := int64(result.Token.ExpiresAt.Sub(result.Token.IssuedAt) / time.Second)
	http.Redirect(w, r, withFragment(result.Redirect, url.Values{
		"access_token": {result.Token.String()},
		"token_type":   {"Bearer"},
		"expires_in":   {strconv.FormatInt(expiresIn, 10)},
	}), http.StatusFound)
}

// withFragment replaces the fragment of target. Fragments never reach the
// redirect target's server logs.
func withFragment(target string, values url.Values) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String() + "#" + values.Encode()
}

func (h *Handler) beginLink(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.LinkStartRequest
	if r.ContentLength != 0 {
		if err := h.decode(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	start, err := h.services.OAuthService.BeginAuthorization(r.Context(),
		chi.URLParam(r, "provider"), req.Redirect, principal.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setStateNonce(w, start)
	utils.WriteJSON(w, models.AuthorizationResponse{AuthorizationURL: start.URL}, http.StatusOK)
}

// stateNonceCookie carries the nonce of the pending provider round trip.
// SameSite=Lax still sends it on the top-level redirect back from the
// provider.
const (
	stateNonceCookie     = "knolib_oauth_nonce"
	stateNonceCookiePath = "/api/auth/oauth"
)

func (h *Handler) setStateNonce(w http.ResponseWriter, start models.AuthorizationStart) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateNonceCookie,
		Value:    start.Nonce,
		Path:     stateNonceCookiePath,
		Expires:  start.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearStateNonce(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateNonceCookie,
		Value:    "",
		Path:     stateNonceCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

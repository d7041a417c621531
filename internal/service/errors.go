// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/knolib-identity/internal/oauth"
	"github.com/MKhiriev/knolib-identity/internal/security"
)

// Error kinds returned by the services. Every failure leaving this package
// matches exactly one of them with errors.Is; the HTTP layer maps them to
// status codes.
var (
	// ErrInvalidCredentials covers an unknown email, an account without a
	// password and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled is returned when a deactivated user signs in.
	ErrAccountDisabled = errors.New("account is disabled")
	// ErrRateLimited is returned when too many attempts were made. It never
	// reveals when the window resets.
	ErrRateLimited = errors.New("too many attempts")

	ErrProviderNotFound = oauth.ErrProviderNotFound
	ErrProviderDisabled = oauth.ErrProviderDisabled
	// ErrProviderUnavailable is returned for every upstream provider failure,
	// including timeouts.
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrIdentityConflict is returned when a provider identity belongs to
	// another user, or when the user already holds a different identity of
	// the same provider.
	ErrIdentityConflict = errors.New("identity is linked to another account")
	// ErrDuplicateLink is returned when the caller already linked the
	// provider.
	ErrDuplicateLink = errors.New("provider already linked")
	// ErrLastSignInMethod is returned when unlinking would leave the account
	// without any way to sign in.
	ErrLastSignInMethod = errors.New("cannot remove the last sign-in method")

	ErrInvalidRedirect = errors.New("redirect target not allowed")
	ErrInvalidState    = errors.New("invalid or expired authorization state")
	ErrWeakPassword    = errors.New("password does not meet the policy")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmailTaken      = errors.New("email already registered")

	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternal       = errors.New("internal error")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when no
	// version is configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// WeakPasswordError lists every unmet password rule. It matches
// [ErrWeakPassword].
type WeakPasswordError struct {
	Violations []security.PasswordViolation
}

func (e *WeakPasswordError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, string(v))
	}
	return ErrWeakPassword.Error() + ": " + strings.Join(parts, ", ")
}

func (e *WeakPasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}

// kinds lists the taxonomy in match order. Wrapped errors can match more
// than one sentinel; the first match wins.
var kinds = []struct {
	err  error
	kind string
}{
	{ErrUnauthorized, "Unauthorized"},
	{ErrForbidden, "Forbidden"},
	{ErrInvalidCredentials, "InvalidCredentials"},
	{ErrAccountDisabled, "AccountDisabled"},
	{ErrRateLimited, "RateLimited"},
	{ErrProviderNotFound, "ProviderNotFound"},
	{ErrProviderDisabled, "ProviderDisabled"},
	{ErrProviderUnavailable, "ProviderUnavailable"},
	{ErrIdentityConflict, "IdentityConflict"},
	{ErrDuplicateLink, "DuplicateLink"},
	{ErrLastSignInMethod, "LastSignInMethod"},
	{ErrInvalidRedirect, "InvalidRedirect"},
	{ErrInvalidState, "InvalidState"},
	{ErrWeakPassword, "WeakPassword"},
	{ErrInvalidEmail, "InvalidEmail"},
	{ErrEmailTaken, "EmailTaken"},
	{ErrNotFound, "NotFound"},
	{ErrInvalidRequest, "InvalidRequest"},
	{ErrInternal, "Internal"},
}

// KindOf returns the taxonomy name of err, or "Internal" for errors outside
// the taxonomy.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "Internal"
}

// isServiceError reports whether err already belongs to the taxonomy.
func isServiceError(err error) bool {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return true
		}
	}
	return false
}

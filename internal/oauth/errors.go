// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import "errors"

var (
	// ErrProviderNotFound is returned when no configuration row exists for the
	// requested provider or the catalog does not know it.
	ErrProviderNotFound = errors.New("identity provider not found")
	// ErrProviderDisabled is returned for providers that are disabled or lack
	// client credentials.
	ErrProviderDisabled = errors.New("identity provider disabled")
	// ErrUpstream wraps every failure talking to a provider: transport errors,
	// timeouts, non-2xx responses and malformed payloads.
	ErrUpstream = errors.New("identity provider unavailable")
	// ErrMissingExternalID is returned when a provider profile carries no
	// stable account identifier.
	ErrMissingExternalID = errors.New("provider profile has no account id")
)

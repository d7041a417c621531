// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NormalizedProfile is the canonical shape every provider profile is mapped
// into. Email, DisplayName and Avatar are optional: some regional providers
// never disclose an email address.
type NormalizedProfile struct {
	ExternalID  string
	Email       *string
	DisplayName *string
	Avatar      *string

	AccessToken  string
	RefreshToken string
}

// AuthorizationStart is the outcome of starting a provider round trip. Nonce
// must come back with the callback from the same user agent.
type AuthorizationStart struct {
	URL       string
	Nonce     string
	ExpiresAt time.Time
}

// CallbackResult is the outcome of a provider callback.
type CallbackResult struct {
	User User
	// Token is empty for explicit linking flows.
	Token Token
	// Redirect is the validated post-login target carried by the state.
	Redirect string
	Linked   bool
}

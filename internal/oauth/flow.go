// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"

	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

//go:generate mockgen -source=flow.go -destination=../mock/oauth_mock.go -package=mock

// Flow runs the authorization code grant against one configured provider.
type Flow interface {
	// AuthCodeURL returns the URL the user agent is sent to.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for the account profile. Every
	// upstream failure wraps [ErrUpstream].
	Exchange(ctx context.Context, code string) (models.NormalizedProfile, error)
}

// Credentials are the per-deployment client settings of a provider.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// ProviderDescriptor is a configured provider resolved to its runnable flow.
type ProviderDescriptor struct {
	Config models.ProviderConfig
	Kind   Kind
	Flow   Flow
}

// Public returns the secret-free view of the descriptor.
func (d ProviderDescriptor) Public() models.PublicProvider {
	return d.Config.Public()
}

// NewFlow builds the flow variant selected by entry.Kind.
func NewFlow(entry CatalogEntry, creds Credentials, client *utils.HTTPClient) Flow {
	if entry.Kind == KindCustom && entry.Protocol != nil {
		return &customFlow{entry: entry, creds: creds, client: client}
	}
	return newStandardFlow(entry, creds, client)
}

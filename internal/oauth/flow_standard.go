// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// standardFlow is the authorization code grant with a bearer-protected
// userinfo endpoint.
type standardFlow struct {
	config oauth2.Config
	entry  CatalogEntry
	client *utils.HTTPClient
}

func newStandardFlow(entry CatalogEntry, creds Credentials, client *utils.HTTPClient) *standardFlow {
	return &standardFlow{
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       entry.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   entry.Endpoints.AuthURL,
				TokenURL:  entry.Endpoints.TokenURL,
				AuthStyle: entry.AuthStyle,
			},
		},
		entry:  entry,
		client: client,
	}
}

func (f *standardFlow) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state)
}

func (f *standardFlow) Exchange(ctx context.Context, code string) (models.NormalizedProfile, error) {
	log := logger.FromContext(ctx)

	// oauth2 picks the transport up from the context
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client.GetClient())

	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*standardFlow.Exchange").Str("provider", f.entry.Name).Msg("token exchange failed")
		return models.NormalizedProfile{}, fmt.Errorf("%w: token exchange: %w", ErrUpstream, err)
	}

	req := f.client.R().SetContext(ctx)
	if f.entry.TokenInQuery {
		req.SetQueryParam("access_token", token.AccessToken)
	} else {
		req.SetAuthToken(token.AccessToken)
	}

	resp, err := req.Get(f.entry.Endpoints.UserInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*standardFlow.Exchange").Str("provider", f.entry.Name).Msg("userinfo request failed")
		return models.NormalizedProfile{}, fmt.Errorf("%w: userinfo: %w", ErrUpstream, err)
	}
	if resp.IsError() {
		log.Error().Str("func", "*standardFlow.Exchange").Str("provider", f.entry.Name).
			Int("status", resp.StatusCode()).Msg("userinfo returned an error status")
		return models.NormalizedProfile{}, fmt.Errorf("%w: userinfo status %d", ErrUpstream, resp.StatusCode())
	}

	profile, err := f.entry.Fields.Map(resp.Body())
	if err != nil {
		return models.NormalizedProfile{}, err
	}

	if profile.Email == nil && f.entry.Endpoints.EmailsURL != "" {
		profile.Email = f.primaryEmail(ctx, token.AccessToken)
	}

	profile.AccessToken = token.AccessToken
	profile.RefreshToken = token.RefreshToken
	return profile, nil
}

type emailEntry struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// primaryEmail returns the primary verified address, falling back to any
// verified one. Failures leave the profile without an email.
func (f *standardFlow) primaryEmail(ctx context.Context, accessToken string) *string {
	resp, err := f.client.R().SetContext(ctx).SetAuthToken(accessToken).Get(f.entry.Endpoints.EmailsURL)
	if err != nil || resp.IsError() {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*standardFlow.primaryEmail").
			Str("provider", f.entry.Name).Msg("could not list account emails")
		return nil
	}

	var emails []emailEntry
	if err := json.Unmarshal(resp.Body(), &emails); err != nil {
		return nil
	}

	var fallback string
	for _, e := range emails {
		if !e.Verified {
			continue
		}
		if e.Primary {
			return models.StringPtr(e.Email)
		}
		if fallback == "" {
			fallback = e.Email
		}
	}
	return models.StringPtr(fallback)
}

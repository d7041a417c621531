// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// ProviderSource reads provider configuration. [store.ProviderRepository]
// satisfies it.
type ProviderSource interface {
	ListEnabled(ctx context.Context) ([]models.ProviderConfig, error)
	FindByName(ctx context.Context, name string) (models.ProviderConfig, error)
}

// Registry turns stored provider configuration into runnable descriptors.
// Nothing is cached: configuration changes apply to the next call.
type Registry struct {
	source          ProviderSource
	catalog         Catalog
	client          *utils.HTTPClient
	callbackBaseURL string
}

// NewRegistry constructs a Registry. Callback URLs are derived from
// callbackBaseURL as "<base>/api/auth/oauth/<provider>/callback".
func NewRegistry(source ProviderSource, catalog Catalog, client *utils.HTTPClient, callbackBaseURL string) *Registry {
	return &Registry{
		source:          source,
		catalog:         catalog,
		client:          client,
		callbackBaseURL: strings.TrimRight(callbackBaseURL, "/"),
	}
}

// CallbackURL returns the redirect URI registered with the provider.
func (r *Registry) CallbackURL(provider string) string {
	return r.callbackBaseURL + "/api/auth/oauth/" + provider + "/callback"
}

// LoadEnabledProviders returns every enabled, credential-complete provider
// known to the catalog, ordered by display order and then name.
func (r *Registry) LoadEnabledProviders(ctx context.Context) ([]ProviderDescriptor, error) {
	log := logger.FromContext(ctx)

	configs, err := r.source.ListEnabled(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Registry.LoadEnabledProviders").Msg("error loading provider configuration")
		return nil, fmt.Errorf("error loading provider configuration: %w", err)
	}

	descriptors := make([]ProviderDescriptor, 0, len(configs))
	for _, cfg := range configs {
		if !cfg.HasCredentials() {
			continue
		}
		entry, ok := r.catalog.Lookup(cfg.Name)
		if !ok {
			log.Warn().Str("func", "*Registry.LoadEnabledProviders").Str("provider", cfg.Name).Msg("skipping provider without catalog entry")
			continue
		}
		descriptors = append(descriptors, r.describe(cfg, entry))
	}

	return descriptors, nil
}

// PublicProviders returns the secret-free descriptors of usable providers.
func (r *Registry) PublicProviders(ctx context.Context) ([]models.PublicProvider, error) {
	descriptors, err := r.LoadEnabledProviders(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicProvider, 0, len(descriptors))
	for _, d := range descriptors {
		public = append(public, d.Public())
	}
	return public, nil
}

// Resolve returns the descriptor of one provider. It fails with
// [ErrProviderNotFound] when there is no configuration row or catalog entry
// and with [ErrProviderDisabled] when the provider is disabled or lacks
// credentials.
func (r *Registry) Resolve(ctx context.Context, name string) (ProviderDescriptor, error) {
	cfg, err := r.source.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProviderDescriptor{}, ErrProviderNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*Registry.Resolve").Str("provider", name).Msg("error loading provider configuration")
		return ProviderDescriptor{}, fmt.Errorf("error loading provider configuration: %w", err)
	}

	entry, ok := r.catalog.Lookup(cfg.Name)
	if !ok {
		logger.FromContext(ctx).Warn().Str("func", "*Registry.Resolve").Str("provider", name).Msg("provider has no catalog entry")
		return ProviderDescriptor{}, ErrProviderNotFound
	}
	if !cfg.Enabled || !cfg.HasCredentials() {
		return ProviderDescriptor{}, ErrProviderDisabled
	}

	return r.describe(cfg, entry), nil
}

func (r *Registry) describe(cfg models.ProviderConfig, entry CatalogEntry) ProviderDescriptor {
	creds := Credentials{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  r.CallbackURL(cfg.Name),
	}
	return ProviderDescriptor{
		Config: cfg,
		Kind:   entry.Kind,
		Flow:   NewFlow(entry, creds, r.client),
	}
}

// Known reports whether the catalog can run a provider named name.
func (r *Registry) Known(name string) bool {
	_, ok := r.catalog.Lookup(name)
	return ok
}

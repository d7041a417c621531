// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/validators"
	"github.com/MKhiriev/knolib-identity/models"
)

type providerService struct {
	providers store.ProviderRepository
	registry  ProviderRegistry
	validator validators.Validator
	now       func() time.Time
}

func NewProviderService(providers store.ProviderRepository, registry ProviderRegistry, validator validators.Validator, now func() time.Time) ProviderService {
	return &providerService{
		providers: providers,
		registry:  registry,
		validator: validator,
		now:       now,
	}
}

// ListPublic returns usable providers without any credential material.
func (s *providerService) ListPublic(ctx context.Context) ([]models.PublicProvider, error) {
	public, err := s.registry.PublicProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return public, nil
}

func (s *providerService) ListAdmin(ctx context.Context) ([]models.AdminProvider, error) {
	configs, err := s.providers.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*providerService.ListAdmin").Msg("error listing providers")
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	out := make([]models.AdminProvider, 0, len(configs))
	for _, c := range configs {
		out = append(out, c.Admin())
	}
	return out, nil
}

// Upsert is idempotent; fields absent from update keep their stored value.
// Only providers known to the catalog can be configured.
func (s *providerService) Upsert(ctx context.Context, update models.ProviderConfigUpdate) (models.AdminProvider, error) {
	log := logger.FromContext(ctx)

	update.Name = strings.ToLower(strings.TrimSpace(update.Name))
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.AdminProvider{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if !s.registry.Known(update.Name) {
		return models.AdminProvider{}, ErrProviderNotFound
	}

	stored, err := s.providers.Upsert(ctx, update, s.now())
	if err != nil {
		log.Err(err).Str("func", "*providerService.Upsert").Str("provider", update.Name).Msg("error upserting provider")
		return models.AdminProvider{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*providerService.Upsert").Str("provider", update.Name).
		Bool("enabled", stored.Enabled).Bool("secret_changed", update.ClientSecret != nil).Msg("provider configuration updated")
	return stored.Admin(), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/models"
)

// providerRepository is the SQL implementation of [ProviderRepository] over
// the "provider_configs" table.
type providerRepository struct {
	db *DB
}

func NewProviderRepository(db *DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) ListEnabled(ctx context.Context) ([]models.ProviderConfig, error) {
	return r.list(ctx, sq.Eq{"enabled": true})
}

func (r *providerRepository) ListAll(ctx context.Context) ([]models.ProviderConfig, error) {
	return r.list(ctx, nil)
}

func (r *providerRepository) FindByName(ctx context.Context, name string) (models.ProviderConfig, error) {
	query, args, err := buildSelectProvidersQuery(r.db.builder, sq.Eq{"name": name})
	if err != nil {
		return models.ProviderConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProvider(r.db.querier(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.ProviderConfig{}, r.db.classifier.Classify(err)
	}
	return p, nil
}

// Upsert creates the provider or updates the fields present in update. The
// stored row is returned.
func (r *providerRepository) Upsert(ctx context.Context, update models.ProviderConfigUpdate, at time.Time) (models.ProviderConfig, error) {
	query, args, err := buildUpsertProviderQuery(r.db.builder, update, at)
	if err != nil {
		return models.ProviderConfig{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		err = r.db.classifier.Classify(err)
		logger.FromContext(ctx).Err(err).Str("func", "*providerRepository.Upsert").Str("provider", update.Name).Msg("error upserting provider")
		return models.ProviderConfig{}, err
	}

	return r.FindByName(ctx, update.Name)
}

func (r *providerRepository) list(ctx context.Context, where sq.Sqlizer) ([]models.ProviderConfig, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProvidersQuery(r.db.builder, where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		log.Err(err).Str("func", "*providerRepository.list").Msg("error listing providers")
		return nil, err
	}
	defer rows.Close()

	providers := make([]models.ProviderConfig, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			log.Err(err).Str("func", "*providerRepository.list").Msg("error scanning provider")
			return nil, err
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.classifier.Classify(err)
	}

	return providers, nil
}

func scanProvider(row rowScanner) (models.ProviderConfig, error) {
	var p models.ProviderConfig
	err := row.Scan(&p.Name, &p.DisplayName, &p.ClientID, &p.ClientSecret, &p.Enabled,
		&p.Order, &p.Icon, &p.Color, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProviderConfig{}, err
		}
		return models.ProviderConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return p, nil
}

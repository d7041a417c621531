// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/models"
)

// identityRepository is the SQL implementation of [IdentityRepository] over
// the "accounts" table.
type identityRepository struct {
	db *DB
}

func NewIdentityRepository(db *DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(ctx context.Context, identity models.LinkedIdentity) (models.LinkedIdentity, error) {
	query, args, err := buildInsertIdentityQuery(r.db.builder, identity)
	if err != nil {
		return models.LinkedIdentity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		err = r.db.classifier.Classify(err)
		// uniqueness collisions are an expected outcome of concurrent linking
		if !errors.Is(err, ErrIdentityTaken) && !errors.Is(err, ErrProviderAlreadyLinked) {
			logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.Create").Msg("error inserting identity")
		}
		return models.LinkedIdentity{}, err
	}

	return identity, nil
}

func (r *identityRepository) FindByProviderAccount(ctx context.Context, provider, providerAccountID string) (models.LinkedIdentity, error) {
	return r.findOne(ctx, sq.Eq{"provider": provider, "provider_account_id": providerAccountID})
}

func (r *identityRepository) FindByUserAndProvider(ctx context.Context, userID, provider string) (models.LinkedIdentity, error) {
	return r.findOne(ctx, sq.Eq{"user_id": userID, "provider": provider})
}

func (r *identityRepository) ListByUser(ctx context.Context, userID string) ([]models.LinkedIdentity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdentityQuery(r.db.builder, sq.Eq{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		log.Err(err).Str("func", "*identityRepository.ListByUser").Msg("error listing identities")
		return nil, err
	}
	defer rows.Close()

	identities := make([]models.LinkedIdentity, 0)
	for rows.Next() {
		l, err := scanIdentity(rows)
		if err != nil {
			log.Err(err).Str("func", "*identityRepository.ListByUser").Msg("error scanning identity")
			return nil, err
		}
		identities = append(identities, l)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.classifier.Classify(err)
	}

	return identities, nil
}

func (r *identityRepository) UpdateTokens(ctx context.Context, id string, accessToken, refreshToken *string) error {
	query, args, err := buildUpdateIdentityTokensQuery(r.db.builder, id, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.UpdateTokens").Msg("error updating tokens")
		return err
	}
	return expectAffected(res)
}

func (r *identityRepository) Delete(ctx context.Context, userID, provider string) error {
	query, args, err := buildDeleteIdentityQuery(r.db.builder, userID, provider)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.Delete").Msg("error deleting identity")
		return err
	}
	return expectAffected(res)
}

func (r *identityRepository) findOne(ctx context.Context, where sq.Sqlizer) (models.LinkedIdentity, error) {
	query, args, err := buildSelectIdentityQuery(r.db.builder, where)
	if err != nil {
		return models.LinkedIdentity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	l, err := scanIdentity(r.db.querier(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.LinkedIdentity{}, r.db.classifier.Classify(err)
	}
	return l, nil
}

func scanIdentity(row rowScanner) (models.LinkedIdentity, error) {
	var l models.LinkedIdentity
	err := row.Scan(&l.ID, &l.UserID, &l.ProviderName, &l.ProviderAccountID,
		&l.AccessToken, &l.RefreshToken, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LinkedIdentity{}, err
		}
		return models.LinkedIdentity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return l, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	db *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts user. Emails are lower-cased before storage; a colliding
// email yields [ErrEmailTaken].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email != nil {
		email := strings.ToLower(*user.Email)
		user.Email = &email
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		err = r.db.classifier.Classify(err)
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, false)
}

func (r *userRepository) FindByIDForUpdate(ctx context.Context, id string) (models.User, error) {
	// SQLite has no row locks; its single connection already serializes writers
	return r.findOne(ctx, sq.Eq{"id": id}, r.db.dialect == DialectPostgres)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": strings.ToLower(strings.TrimSpace(email))}, false)
}

func (r *userRepository) List(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		log.Err(err).Str("func", "*userRepository.List").Msg("error listing users")
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error scanning user")
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, r.db.classifier.Classify(err)
	}

	return users, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, "UpdateLastLogin", id, map[string]any{"last_login_at": at}, at)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error {
	return r.update(ctx, "UpdatePassword", id, map[string]any{"password_hash": passwordHash}, at)
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role models.Role, at time.Time) error {
	return r.update(ctx, "UpdateRole", id, map[string]any{"role": string(role)}, at)
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	return r.update(ctx, "SetActive", id, map[string]any{"is_active": active}, at)
}

func (r *userRepository) findOne(ctx context.Context, where sq.Sqlizer, forUpdate bool) (models.User, error) {
	query, args, err := buildSelectUserQuery(r.db.builder, where, forUpdate)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.db.querier(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.classifier.Classify(err)
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.findOne").Msg("error selecting user")
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *userRepository) update(ctx context.Context, op, id string, set map[string]any, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, id, set, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		err = r.db.classifier.Classify(err)
		log.Err(err).Str("func", "*userRepository."+op).Msg("error updating user")
		return err
	}

	return expectAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Avatar,
		&role, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	u.Role = models.Role(role)
	return u, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

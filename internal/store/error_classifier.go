// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Unique index names. The SQLite classifier matches on the column lists the
// driver reports instead.
const (
	constraintUsersEmail      = "users_email_key"
	constraintAccountProvider = "accounts_provider_account_key"
	constraintAccountUser     = "accounts_user_provider_key"
)

// ErrorClassifier translates driver errors into the package's sentinel
// errors so that callers never see raw storage errors.
type ErrorClassifier interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassifier] for the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify maps unique violations by constraint name and sql.ErrNoRows to
// [ErrNotFound]. Other errors are wrapped with [ErrExecutingQuery].
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrEmailTaken
		case constraintAccountProvider:
			return ErrIdentityTaken
		case constraintAccountUser:
			return ErrProviderAlreadyLinked
		default:
			return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// SQLiteErrorClassifier implements [ErrorClassifier] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify maps unique violations by the column list in the driver message,
// e.g. "UNIQUE constraint failed: accounts.provider, accounts.provider_account_id".
func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return classifySQLiteUnique(liteErr.Error())
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func classifySQLiteUnique(msg string) error {
	switch {
	case strings.Contains(msg, "users.email"):
		return ErrEmailTaken
	case strings.Contains(msg, "accounts.provider_account_id"):
		return ErrIdentityTaken
	case strings.Contains(msg, "accounts.user_id"):
		return ErrProviderAlreadyLinked
	default:
		return fmt.Errorf("%w: %s", ErrUniqueViolation, msg)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when a user insert or update collides with
	// the unique email index.
	ErrEmailTaken = errors.New("email already exists")

	// ErrIdentityTaken is returned when a linked identity insert collides
	// with the unique (provider, provider_account_id) index: the external
	// identity already belongs to some user.
	ErrIdentityTaken = errors.New("external identity already linked")

	// ErrProviderAlreadyLinked is returned when a linked identity insert
	// collides with the unique (user_id, provider) index: the user already
	// holds an identity for this provider.
	ErrProviderAlreadyLinked = errors.New("provider already linked to user")

	// ErrUniqueViolation is returned for any other unique constraint
	// violation.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrUnsupportedDSN is returned by [Open] for DSNs of an unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/knolib-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a function inside a database transaction. Repository calls
// made with the context passed to fn join the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository persists [models.User] records. Lookups that match nothing
// return [ErrNotFound].
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// FindByIDForUpdate locks the user row until the surrounding transaction
	// ends. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, limit, offset uint64) ([]models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error
	UpdateRole(ctx context.Context, id string, role models.Role, at time.Time) error
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
}

// IdentityRepository persists [models.LinkedIdentity] records.
type IdentityRepository interface {
	// Create returns [ErrIdentityTaken] or [ErrProviderAlreadyLinked] when
	// one of the unique indexes rejects the row.
	Create(ctx context.Context, identity models.LinkedIdentity) (models.LinkedIdentity, error)
	FindByProviderAccount(ctx context.Context, provider, providerAccountID string) (models.LinkedIdentity, error)
	FindByUserAndProvider(ctx context.Context, userID, provider string) (models.LinkedIdentity, error)
	ListByUser(ctx context.Context, userID string) ([]models.LinkedIdentity, error)
	UpdateTokens(ctx context.Context, id string, accessToken, refreshToken *string) error
	Delete(ctx context.Context, userID, provider string) error
}

// ProviderRepository persists [models.ProviderConfig] records.
type ProviderRepository interface {
	// ListEnabled returns enabled providers ordered by order, then name.
	ListEnabled(ctx context.Context) ([]models.ProviderConfig, error)
	ListAll(ctx context.Context) ([]models.ProviderConfig, error)
	FindByName(ctx context.Context, name string) (models.ProviderConfig, error)
	Upsert(ctx context.Context, update models.ProviderConfigUpdate, at time.Time) (models.ProviderConfig, error)
}

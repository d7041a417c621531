// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Repositories groups every repository sharing one [DB].
type Repositories struct {
	Users      UserRepository
	Identities IdentityRepository
	Providers  ProviderRepository
	Tx         Transactor
}

// NewRepositories wires all repositories to db.
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(db),
		Identities: NewIdentityRepository(db),
		Providers:  NewProviderRepository(db),
		Tx:         db,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents one human account. It is the ownership root of every
// [LinkedIdentity] bound to it and is never hard-deleted; deactivation
// (IsActive=false) is the only way to revoke access.
type User struct {
	// ID is the opaque, immutable identifier (UUIDv7).
	ID string `json:"id"`

	// Email is unique and stored lower-cased. It is nil for accounts created
	// through providers that never disclose an email address.
	Email *string `json:"email,omitempty"`

	// PasswordHash is nil for accounts created purely via a delegated
	// identity provider. It must never leave the server.
	PasswordHash *string `json:"-"`

	DisplayName *string `json:"display_name,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`

	Role     Role `json:"role"`
	IsActive bool `json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether the account can sign in with a credential.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Principal returns the (userId, role) pair carried by session tokens.
func (u User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

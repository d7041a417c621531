// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// Role is the authorization tier of a user. Roles are totally ordered:
// ADMIN > EDITOR > AUTHOR.
type Role string

const (
	// RoleAuthor is the lowest tier and the default for newly created users.
	RoleAuthor Role = "AUTHOR"
	// RoleEditor may manage any content.
	RoleEditor Role = "EDITOR"
	// RoleAdmin may additionally manage users and identity providers.
	RoleAdmin Role = "ADMIN"
)

// ErrUnknownRole is returned by [ParseRole] for values outside the hierarchy.
var ErrUnknownRole = errors.New("unknown role")

// Level returns the position of the role in the hierarchy (ADMIN=3,
// EDITOR=2, AUTHOR=1). Unknown roles have level 0 and therefore satisfy no
// requirement.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleEditor:
		return 2
	case RoleAuthor:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.Level() > 0
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts a case-insensitive role name into a [Role].
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", ErrUnknownRole
	}
	return role, nil
}

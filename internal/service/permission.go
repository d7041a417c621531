// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/knolib-identity/models"

// HasRole reports whether actual satisfies required in the hierarchy
// ADMIN > EDITOR > AUTHOR. Unknown roles satisfy nothing and are satisfied
// by nothing.
func HasRole(actual, required models.Role) bool {
	if !actual.Valid() || !required.Valid() {
		return false
	}
	return actual.Level() >= required.Level()
}

func CanManageUsers(p models.Principal) bool {
	return HasRole(p.Role, models.RoleAdmin)
}

func CanManageContent(p models.Principal) bool {
	return HasRole(p.Role, models.RoleEditor)
}

func CanCreateContent(p models.Principal) bool {
	return HasRole(p.Role, models.RoleAuthor)
}

// CanEditContent allows owners and editors.
func CanEditContent(p models.Principal, ownerID string) bool {
	if p.UserID == "" {
		return false
	}
	return (p.UserID == ownerID && CanCreateContent(p)) || CanManageContent(p)
}

// CanDeleteAccount allows administrators to deactivate accounts other than
// their own.
func CanDeleteAccount(actor models.Principal, targetID string) bool {
	return actor.UserID != "" && actor.UserID != targetID && CanManageUsers(actor)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LinkedIdentity binds one external provider identity to exactly one [User].
//
// The pair (ProviderName, ProviderAccountID) is globally unique and a user
// holds at most one identity per ProviderName.
type LinkedIdentity struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	ProviderName      string `json:"provider"`
	ProviderAccountID string `json:"provider_account_id"`

	// Cached provider tokens. Never serialized.
	AccessToken  *string `json:"-"`
	RefreshToken *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the LinkedIdentity model.
func (l LinkedIdentity) TableName() string {
	return "accounts"
}

// LinkedIdentityView is a linked identity enriched with the public display
// metadata of its provider, as returned to the owning user.
type LinkedIdentityView struct {
	ProviderName      string    `json:"provider"`
	ProviderAccountID string    `json:"provider_account_id"`
	DisplayName       string    `json:"display_name"`
	Icon              string    `json:"icon,omitempty"`
	Color             string    `json:"color,omitempty"`
	LinkedAt          time.Time `json:"linked_at"`
}

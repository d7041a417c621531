// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderConfig is the persisted configuration of one identity provider.
// ClientSecret is write-only from the caller's perspective and is excluded
// from every serialized form.
type ProviderConfig struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"`
	Enabled      bool   `json:"enabled"`
	Order        int    `json:"order"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ProviderConfig model.
func (p ProviderConfig) TableName() string {
	return "provider_configs"
}

// HasCredentials reports whether the provider can be used for OAuth flows.
func (p ProviderConfig) HasCredentials() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Public strips credentials from the configuration.
func (p ProviderConfig) Public() PublicProvider {
	return PublicProvider{
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Icon:        p.Icon,
		Color:       p.Color,
		Order:       p.Order,
	}
}

// Admin returns the privileged view of the configuration. The secret itself
// is still never returned, only whether one is set.
func (p ProviderConfig) Admin() AdminProvider {
	return AdminProvider{
		Name:            p.Name,
		DisplayName:     p.DisplayName,
		ClientID:        p.ClientID,
		HasClientSecret: p.ClientSecret != "",
		Enabled:         p.Enabled,
		Order:           p.Order,
		Icon:            p.Icon,
		Color:           p.Color,
		UpdatedAt:       p.UpdatedAt,
	}
}

// PublicProvider is the secret-free descriptor served to untrusted callers.
type PublicProvider struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Order       int    `json:"order"`
}

// AdminProvider is the provider view served to administrators.
type AdminProvider struct {
	Name            string    `json:"name"`
	DisplayName     string    `json:"display_name"`
	ClientID        string    `json:"client_id"`
	HasClientSecret bool      `json:"has_client_secret"`
	Enabled         bool      `json:"enabled"`
	Order           int       `json:"order"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProviderConfigUpdate is an upsert request. Nil fields keep their previous
// value when the provider already exists.
type ProviderConfigUpdate struct {
	Name         string  `json:"-" validate:"required,max=64"`
	DisplayName  *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	ClientID     *string `json:"client_id,omitempty" validate:"omitempty,max=512"`
	ClientSecret *string `json:"client_secret,omitempty" validate:"omitempty,max=512"`
	Enabled      *bool   `json:"enabled,omitempty"`
	Order        *int    `json:"order,omitempty" validate:"omitempty,min=0"`
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=512"`
	Color        *string `json:"color,omitempty" validate:"omitempty,max=32"`
}

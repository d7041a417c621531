// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest is the body of a credential registration.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,max=254"`
	Password    string `json:"password" validate:"required,max=128"`
	DisplayName string `json:"display_name" validate:"omitempty,max=100"`
}

// LoginRequest is the body of a credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// ChangePasswordRequest is the body of a password change. CurrentPassword may
// be empty for accounts that do not have a password yet.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"max=128"`
	NewPassword     string `json:"new_password" validate:"required,max=128"`
}

// RoleUpdateRequest changes the role of a user.
type RoleUpdateRequest struct {
	Role Role `json:"role" validate:"required,oneof=ADMIN EDITOR AUTHOR"`
}

// ActiveUpdateRequest activates or deactivates a user.
type ActiveUpdateRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// LinkStartRequest begins an explicit provider linking flow.
type LinkStartRequest struct {
	Redirect string `json:"redirect"`
}

// TokenResponse is returned after every successful authentication.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// AuthorizationResponse carries the provider authorization URL.
type AuthorizationResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

// ErrorBody is the machine-checkable part of every failure response.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope of the HTTP API.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

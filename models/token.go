// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the verified (userId, role) pair established by a session
// token.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// SessionClaims is the claim set of a session token. The subject carries the
// user ID.
type SessionClaims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token is a freshly issued session token.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string

	Principal Principal
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// StateClaims is the claim set of the signed OAuth state parameter.
type StateClaims struct {
	jwt.RegisteredClaims

	Provider string `json:"prv"`
	Redirect string `json:"rdr"`
	// LinkUserID is set when an authenticated user started an explicit
	// linking flow.
	LinkUserID string `json:"lnk,omitempty"`
}

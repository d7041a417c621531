// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/knolib-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token errors returned by the helpers below. Callers translate all of them
// into a single unauthorized outcome.
var (
	// ErrInvalidTokenParams is returned when a token cannot be minted because
	// a required parameter is empty or zero.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	// ErrEmptySubject is returned when a parsed token carries no subject.
	ErrEmptySubject = errors.New("empty subject error")
	// ErrInvalidRoleClaim is returned when the role claim is not a known role.
	ErrInvalidRoleClaim = errors.New("invalid role claim")
	// ErrInvalidAuthorizationHeader is returned for headers that are not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token carries the standard iss, sub, iat and exp claims plus the
// principal's role:
//
//	token, err := utils.GenerateSessionToken("knolib-identity", principal, time.Now(), 24*time.Hour, "secret")
func GenerateSessionToken(issuer string, principal models.Principal, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || principal.UserID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	expiresAt := issuedAt.Add(tokenDuration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Role: principal.Role,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		Principal:    principal,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseSessionToken validates signature, issuer and expiry of a session token
// as of now and returns the principal it carries. It does not consult any
// storage.
func ParseSessionToken(tokenString, signKey, issuer string, now time.Time) (models.Principal, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(signKey),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Principal{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Principal{}, ErrEmptySubject
	}
	if !claims.Role.Valid() {
		return models.Principal{}, ErrInvalidRoleClaim
	}

	return models.Principal{UserID: claims.Subject, Role: claims.Role}, nil
}

// GenerateStateToken signs an OAuth state parameter. The nonce becomes the
// token ID so every state value is unique.
func GenerateStateToken(issuer string, state models.StateClaims, issuedAt time.Time, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || state.Provider == "" || state.ID == "" || duration <= 0 || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	state.Issuer = issuer
	state.Audience = jwt.ClaimStrings{stateAudience}
	state.IssuedAt = jwt.NewNumericDate(issuedAt)
	state.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(duration))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &state).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing state: %w", err)
	}
	return signed, nil
}

// ParseStateToken validates an OAuth state parameter. State tokens carry a
// dedicated audience so they can never be replayed as session tokens.
func ParseStateToken(stateString, signKey, issuer string, now time.Time) (models.StateClaims, error) {
	claims := models.StateClaims{}
	_, err := jwt.ParseWithClaims(stateString, &claims, hmacKey(signKey),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(stateAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.StateClaims{}, fmt.Errorf("error occurred validating state: %w", err)
	}
	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

const stateAudience = "oauth-state"

func hmacKey(signKey string) jwt.Keyfunc {
	return func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/knolib-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

var testPrincipal = models.Principal{UserID: "0190f3c4-7a1e-7c3b-9d1a-3f9a2b4c5d6e", Role: models.RoleEditor}

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	now := time.Now()

	token, err := GenerateSessionToken("issuer", testPrincipal, now, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty SignedString")
	}
	if !token.ExpiresAt.Equal(now.Add(time.Hour).Truncate(time.Second)) {
		t.Errorf("unexpected expiry %v", token.ExpiresAt)
	}

	principal, err := ParseSessionToken(token.SignedString, "secret-key", "issuer", now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if principal != testPrincipal {
		t.Errorf("expected %+v, got %+v", testPrincipal, principal)
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	now := time.Now()
	token, err := GenerateSessionToken("issuer", testPrincipal, now, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ParseSessionToken(token.SignedString, "secret-key", "issuer", now.Add(2*time.Hour))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		principal models.Principal
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", testPrincipal, time.Hour, "key"},
		{"empty subject", "iss", models.Principal{Role: models.RoleAdmin}, time.Hour, "key"},
		{"zero duration", "iss", testPrincipal, 0, "key"},
		{"empty key", "iss", testPrincipal, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.principal, time.Now(), tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestParseSessionToken_Rejections(t *testing.T) {
	now := time.Now()
	valid, err := GenerateSessionToken("issuer", testPrincipal, now, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "issuer",
			Subject:   testPrincipal.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: models.RoleAdmin,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	badRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "issuer",
			Subject:   testPrincipal.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "ROOT",
	}).SignedString([]byte("secret-key"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "issuer", Subject: testPrincipal.UserID},
		Role:             models.RoleAuthor,
	}).SignedString([]byte("secret-key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "issuer"},
		{"wrong issuer", valid.SignedString, "secret-key", "someone-else"},
		{"garbage", "not-a-token", "secret-key", "issuer"},
		{"alg none", noneToken, "secret-key", "issuer"},
		{"unknown role", badRole, "secret-key", "issuer"},
		{"missing expiry", noExpiry, "secret-key", "issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSessionToken(tt.token, tt.key, tt.issuer, now); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestStateToken_RoundTrip(t *testing.T) {
	now := time.Now()
	in := models.StateClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "nonce-1"},
		Provider:         "github",
		Redirect:         "https://knolib.com/after",
		LinkUserID:       "user-1",
	}

	signed, err := GenerateStateToken("issuer", in, now, 10*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := ParseStateToken(signed, "secret-key", "issuer", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Provider != "github" || out.Redirect != in.Redirect || out.LinkUserID != "user-1" || out.ID != "nonce-1" {
		t.Errorf("unexpected claims %+v", out)
	}

	if _, err := ParseStateToken(signed, "secret-key", "issuer", now.Add(11*time.Minute)); err == nil {
		t.Error("expected expired state to be rejected")
	}
}

func TestStateToken_NotAcceptedAsSession(t *testing.T) {
	now := time.Now()
	session, err := GenerateSessionToken("issuer", testPrincipal, now, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := ParseStateToken(session.SignedString, "secret-key", "issuer", now); err == nil {
		t.Error("session token must not be accepted as state")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer   abc", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %q, got %q (err %v)", tt.want, got, err)
			}
		})
	}
}

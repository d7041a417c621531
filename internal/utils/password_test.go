// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// keep hashing cheap in tests
	PasswordHashParams = &argon2id.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestHashPassword_Argon2id(t *testing.T) {
	hash, err := HashPassword("Abc123!@")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := VerifyPassword("Abc123!@", hash)
	if err != nil || !ok {
		t.Errorf("expected match, got %v (err %v)", ok, err)
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil || ok {
		t.Errorf("expected mismatch, got %v (err %v)", ok, err)
	}
	if NeedsRehash(hash) {
		t.Error("argon2id hash must not need rehash")
	}
}

func TestVerifyPassword_LegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("Abc123!@"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := VerifyPassword("Abc123!@", string(legacy))
	if err != nil || !ok {
		t.Errorf("expected match, got %v (err %v)", ok, err)
	}

	ok, err = VerifyPassword("nope", string(legacy))
	if err != nil || ok {
		t.Errorf("expected mismatch, got %v (err %v)", ok, err)
	}
	if !NeedsRehash(string(legacy)) {
		t.Error("bcrypt hash must need rehash")
	}
}

func TestVerifyPassword_UnsupportedHash(t *testing.T) {
	_, err := VerifyPassword("x", "plain-text")
	if !errors.Is(err, ErrUnsupportedHash) {
		t.Errorf("expected ErrUnsupportedHash, got %v", err)
	}
}

func TestPlaceholderHash_VerifiesWithoutMatching(t *testing.T) {
	hash := PlaceholderHash()
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Fatalf("expected argon2id hash with current params, got %q", hash)
	}

	for _, password := range []string{"", "Abc123!@", "knolib"} {
		ok, err := VerifyPassword(password, hash)
		if err != nil {
			t.Fatalf("placeholder must decode, got %v", err)
		}
		if ok {
			t.Errorf("placeholder must not match %q", password)
		}
	}
	if NeedsRehash(hash) {
		t.Error("placeholder built from current params must not need rehash")
	}
}

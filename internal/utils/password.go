// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnsupportedHash is returned by [VerifyPassword] for stored hashes that
// are neither argon2id nor bcrypt.
var ErrUnsupportedHash = errors.New("unsupported password hash format")

// PasswordHashParams are the argon2id parameters used for new hashes.
var PasswordHashParams = argon2id.DefaultParams

// HashPassword derives an argon2id hash in PHC string format.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, PasswordHashParams)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// PlaceholderHash returns an argon2id hash in PHC format, built with the
// current [PasswordHashParams], that matches no password. Verifying against
// it costs as much as verifying a real hash, and building it cannot fail.
func PlaceholderHash() string {
	p := PasswordHashParams
	salt := base64.RawStdEncoding.EncodeToString(make([]byte, p.SaltLength))
	key := base64.RawStdEncoding.EncodeToString(make([]byte, p.KeyLength))
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism, salt, key)
}

// VerifyPassword compares password with a stored hash. Hashes imported from
// older deployments may be bcrypt ("$2a$", "$2b$", "$2y$"); everything else
// must be argon2id. A mismatch is reported as (false, nil).
func VerifyPassword(password, encodedHash string) (bool, error) {
	switch {
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, encodedHash)
		if err != nil {
			return false, fmt.Errorf("error comparing argon2id hash: %w", err)
		}
		return match, nil
	case strings.HasPrefix(encodedHash, "$2a$"),
		strings.HasPrefix(encodedHash, "$2b$"),
		strings.HasPrefix(encodedHash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("error comparing bcrypt hash: %w", err)
		}
		return true, nil
	default:
		return false, ErrUnsupportedHash
	}
}

// NeedsRehash reports whether a stored hash should be replaced by an
// argon2id hash on the next successful login.
func NeedsRehash(encodedHash string) bool {
	return !strings.HasPrefix(encodedHash, "$argon2id$")
}

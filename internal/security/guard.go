// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/go-playground/validator/v10"
)

// DefaultPasswordMinLength is used when [Policy.PasswordMinLength] is zero.
const DefaultPasswordMinLength = 8

// Policy configures a [Guard].
type Policy struct {
	// RedirectAllowlist holds the domains accepted as redirect targets.
	// Subdomains of an entry are accepted as well.
	RedirectAllowlist []string
	// DevelopmentMode additionally accepts loopback redirect targets.
	DevelopmentMode bool
	// PasswordMinLength is the minimal number of characters of a password.
	PasswordMinLength int
}

// Guard bundles the stateless validators with the rate limiter.
type Guard struct {
	store     RateStore
	allowlist []string
	dev       bool
	minLength int
	validate  *validator.Validate
}

// NewGuard creates a Guard counting attempts in store.
func NewGuard(store RateStore, policy Policy) *Guard {
	allowlist := make([]string, 0, len(policy.RedirectAllowlist))
	for _, domain := range policy.RedirectAllowlist {
		domain = normalizeHost(strings.TrimPrefix(strings.TrimSpace(domain), "."))
		if domain != "" {
			allowlist = append(allowlist, domain)
		}
	}

	minLength := policy.PasswordMinLength
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}

	return &Guard{
		store:     store,
		allowlist: allowlist,
		dev:       policy.DevelopmentMode,
		minLength: minLength,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CheckRate counts one attempt for key and reports whether it is within
// maxAttempts for the current fixed window. The first call for a key, or the
// first call after the window elapsed, starts a new window with a count of 1.
//
// A failing store is logged and the attempt is allowed, so that an outage of
// a shared cache never locks every user out.
func (g *Guard) CheckRate(ctx context.Context, key string, maxAttempts int, window time.Duration) bool {
	count, err := g.store.Incr(ctx, key, window)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Guard.CheckRate").Msg("rate store unavailable, allowing attempt")
		return true
	}
	return count <= int64(maxAttempts)
}

// ValidateRedirect reports whether raw is an absolute http(s) URL whose host
// is an allowlisted domain or one of its subdomains. Loopback hosts are
// accepted only in development mode.
func (g *Guard) ValidateRedirect(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, "\\\r\n\t") {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Opaque != "" || u.User != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := normalizeHost(u.Hostname())
	if host == "" {
		return false
	}

	if isLoopback(host) {
		return g.dev
	}

	for _, domain := range g.allowlist {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// PasswordViolation names one unmet password rule.
type PasswordViolation string

const (
	ViolationTooShort         PasswordViolation = "too_short"
	ViolationMissingUppercase PasswordViolation = "missing_uppercase"
	ViolationMissingLowercase PasswordViolation = "missing_lowercase"
	ViolationMissingDigit     PasswordViolation = "missing_digit"
	ViolationMissingSymbol    PasswordViolation = "missing_symbol"
)

// ValidatePasswordStrength checks every rule of the password policy and
// returns all violations in a stable order.
func (g *Guard) ValidatePasswordStrength(password string) (bool, []PasswordViolation) {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	var violations []PasswordViolation
	if utf8.RuneCountInString(password) < g.minLength {
		violations = append(violations, ViolationTooShort)
	}
	if !upper {
		violations = append(violations, ViolationMissingUppercase)
	}
	if !lower {
		violations = append(violations, ViolationMissingLowercase)
	}
	if !digit {
		violations = append(violations, ViolationMissingDigit)
	}
	if !symbol {
		violations = append(violations, ViolationMissingSymbol)
	}

	return len(violations) == 0, violations
}

// MinPasswordLength returns the effective minimal password length.
func (g *Guard) MinPasswordLength() int {
	return g.minLength
}

// ValidateEmailShape performs structural validation of an email address.
// Deliverability is not checked.
func (g *Guard) ValidateEmailShape(email string) bool {
	if len(email) > 254 || strings.TrimSpace(email) != email {
		return false
	}
	return g.validate.Var(email, "required,email") == nil
}

// NormalizeEmail lower-cases and trims an email address for storage and
// lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(host), ".")
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"time"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultTokenIssuer       = "knolib-identity"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultStateDuration     = 10 * time.Minute
	DefaultLoginMaxAttempts  = 5
	DefaultLoginWindow       = 15 * time.Minute
	DefaultPasswordMinLength = 8
	DefaultOAuthTimeout      = 10 * time.Second
	DefaultHTTPAddress       = ":8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultThrottleRPS       = 20
	DefaultThrottleBurst     = 40
	DefaultRedirect          = "/"
)

// validate fills defaults and checks that the final merged
// [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	cfg.applyDefaults()

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.StateDuration < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if len(cfg.Security.RedirectAllowlist) == 0 && !cfg.Security.DevelopmentMode {
		return fmt.Errorf("%w: redirect allowlist is empty", ErrInvalidSecurityConfigs)
	}
	if cfg.Security.LoginMaxAttempts < 1 || cfg.Security.LoginWindow <= 0 {
		return fmt.Errorf("%w: login rate limit must be positive", ErrInvalidSecurityConfigs)
	}

	u, err := url.Parse(cfg.OAuth.CallbackBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: callback base url %q is not absolute", ErrInvalidOAuthConfigs, cfg.OAuth.CallbackBaseURL)
	}

	for _, proxy := range cfg.Server.TrustedProxies {
		if _, err := ParseTrustedProxy(proxy); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
	}

	return nil
}

// ParseTrustedProxy parses a trusted proxy entry given either as a single IP
// address or as a CIDR block.
func ParseTrustedProxy(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("trusted proxy %q: %w", s, err)
		}
		return prefix.Masked(), nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("trusted proxy %q: %w", s, err)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.StateDuration == 0 {
		cfg.App.StateDuration = DefaultStateDuration
	}
	if cfg.Security.LoginMaxAttempts == 0 {
		cfg.Security.LoginMaxAttempts = DefaultLoginMaxAttempts
	}
	if cfg.Security.LoginWindow == 0 {
		cfg.Security.LoginWindow = DefaultLoginWindow
	}
	if cfg.Security.PasswordMinLength == 0 {
		cfg.Security.PasswordMinLength = DefaultPasswordMinLength
	}
	if cfg.Security.DefaultRedirect == "" {
		cfg.Security.DefaultRedirect = DefaultRedirect
	}
	if cfg.OAuth.RequestTimeout == 0 {
		cfg.OAuth.RequestTimeout = DefaultOAuthTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ThrottleRPS == 0 {
		cfg.Server.ThrottleRPS = DefaultThrottleRPS
	}
	if cfg.Server.ThrottleBurst == 0 {
		cfg.Server.ThrottleBurst = DefaultThrottleBurst
	}
	if cfg.OAuth.CallbackBaseURL == "" && cfg.Security.DevelopmentMode {
		if _, port, err := net.SplitHostPort(cfg.Server.HTTPAddress); err == nil {
			cfg.OAuth.CallbackBaseURL = "http://localhost:" + port
		}
	}
}

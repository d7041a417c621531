// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecurityConfigs indicates an unusable security policy
	// (for example, no redirect domains outside development mode).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidOAuthConfigs indicates that OAuth callbacks cannot be built.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidServerConfigs indicates unusable transport settings
	// (for example, a malformed trusted proxy entry).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

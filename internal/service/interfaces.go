// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/oauth"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService signs users in and out with email and password.
type AuthService interface {
	// Authenticate verifies a credential. Unknown emails, accounts without a
	// password and wrong passwords all yield ErrInvalidCredentials; a
	// deactivated account yields ErrAccountDisabled once the password
	// verified.
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	// Register creates an AUTHOR account. Email shape and password strength
	// are validated before anything is written.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// ChangePassword replaces the password of userID. Accounts without a
	// password may set one without supplying the current password.
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
}

// RateLimitService applies the sign-in rate limits.
type RateLimitService interface {
	AllowLogin(ctx context.Context, email, clientIP string) error
	AllowRegister(ctx context.Context, clientIP string) error
	AllowOAuth(ctx context.Context, clientIP string) error
}

// SessionService issues and verifies stateless session tokens.
type SessionService interface {
	IssueToken(ctx context.Context, principal models.Principal) (models.Token, error)
	// VerifyToken checks signature, issuer and expiry only.
	VerifyToken(ctx context.Context, token string) (models.Principal, error)
	// Authorize verifies the token and re-reads the user, rejecting unknown
	// and deactivated accounts with ErrUnauthorized.
	Authorize(ctx context.Context, token string) (models.Principal, error)
}

// LinkService binds provider identities to users.
type LinkService interface {
	// LinkOrCreateUser resolves the user signing in with profile, attaching
	// the identity to an existing account or creating a new one.
	LinkOrCreateUser(ctx context.Context, profile models.NormalizedProfile, provider string) (models.User, error)
	// LinkIdentity attaches an identity to an already authenticated user.
	LinkIdentity(ctx context.Context, userID, provider string, profile models.NormalizedProfile) (models.LinkedIdentity, error)
	UnlinkIdentity(ctx context.Context, userID, provider string) error
	ListLinkedIdentities(ctx context.Context, userID string) ([]models.LinkedIdentityView, error)
}

// OAuthService runs delegated sign-in through identity providers.
type OAuthService interface {
	// BeginAuthorization returns the provider URL the user agent is sent to
	// and the nonce binding the flow to that user agent. linkUserID is set
	// for an explicit linking flow.
	BeginAuthorization(ctx context.Context, provider, redirect, linkUserID string) (models.AuthorizationStart, error)
	// VerifyState checks a state parameter issued for provider.
	VerifyState(ctx context.Context, provider, state string) (models.StateClaims, error)
	// CompleteAuthorization exchanges code for the provider profile.
	CompleteAuthorization(ctx context.Context, provider, code string) (models.NormalizedProfile, error)
	// HandleCallback runs the whole callback: state and nonce, exchange,
	// linking and token issuance. A state is accepted once.
	HandleCallback(ctx context.Context, provider, code, state, nonce string) (models.CallbackResult, error)
}

// ProviderService manages identity provider configuration.
type ProviderService interface {
	ListPublic(ctx context.Context) ([]models.PublicProvider, error)
	ListAdmin(ctx context.Context) ([]models.AdminProvider, error)
	Upsert(ctx context.Context, update models.ProviderConfigUpdate) (models.AdminProvider, error)
}

// UserService reads and administers user accounts.
type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error)
	SetRole(ctx context.Context, actor models.Principal, targetID string, role models.Role) (models.User, error)
	SetActive(ctx context.Context, actor models.Principal, targetID string, active bool) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Guard is the part of [security.Guard] the services depend on.
type Guard interface {
	CheckRate(ctx context.Context, key string, maxAttempts int, window time.Duration) bool
	ValidateRedirect(raw string) bool
	ValidatePasswordStrength(password string) (bool, []security.PasswordViolation)
	ValidateEmailShape(email string) bool
}

// ProviderRegistry is the part of [oauth.Registry] the services depend on.
type ProviderRegistry interface {
	LoadEnabledProviders(ctx context.Context) ([]oauth.ProviderDescriptor, error)
	PublicProviders(ctx context.Context) ([]models.PublicProvider, error)
	Resolve(ctx context.Context, name string) (oauth.ProviderDescriptor, error)
	Known(name string) bool
}

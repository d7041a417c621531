// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	users   store.UserRepository
	guard   Guard
	ids     utils.IDGenerator
	metrics metrics.Recorder
	now     func() time.Time
}

// NewAuthService constructs an AuthService over the user repository.
func NewAuthService(users store.UserRepository, guard Guard, ids utils.IDGenerator, recorder metrics.Recorder, now func() time.Time) AuthService {
	return &authService{
		users:   users,
		guard:   guard,
		ids:     ids,
		metrics: recorder,
		now:     now,
	}
}

// dummyHash is verified against when there is no stored hash, so unknown
// emails cost as much time as wrong passwords.
func dummyHash() string {
	return utils.PlaceholderHash()
}

func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByEmail(ctx, security.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_, _ = utils.VerifyPassword(password, dummyHash())
			a.metrics.RecordLogin("password", "invalid_credentials")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error looking up user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !user.HasPassword() {
		_, _ = utils.VerifyPassword(password, dummyHash())
		a.metrics.RecordLogin("password", "invalid_credentials")
		return models.User{}, ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(password, *user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("stored password hash cannot be verified")
	}
	if !ok {
		a.metrics.RecordLogin("password", "invalid_credentials")
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		a.metrics.RecordLogin("password", "account_disabled")
		return models.User{}, ErrAccountDisabled
	}

	now := a.now()
	if utils.NeedsRehash(*user.PasswordHash) {
		a.upgradeHash(ctx, user.ID, password, now)
	}

	if err := a.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Str("user_id", user.ID).Msg("error updating last login")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	user.LastLoginAt = &now

	a.metrics.RecordLogin("password", "success")
	return user, nil
}

// upgradeHash replaces a legacy hash with argon2id. Failures only cost a
// retry on the next sign-in.
func (a *authService) upgradeHash(ctx context.Context, userID, password string, now time.Time) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*authService.upgradeHash").Msg("error hashing password")
		return
	}
	if err := a.users.UpdatePassword(ctx, userID, hash, now); err != nil {
		log.Err(err).Str("func", "*authService.upgradeHash").Str("user_id", userID).Msg("error storing upgraded hash")
		return
	}
	log.Info().Str("func", "*authService.upgradeHash").Str("user_id", userID).Msg("upgraded legacy password hash")
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := security.NormalizeEmail(req.Email)
	if !a.guard.ValidateEmailShape(email) {
		a.metrics.RecordRegistration("invalid_email")
		return models.User{}, ErrInvalidEmail
	}
	if ok, violations := a.guard.ValidatePasswordStrength(req.Password); !ok {
		a.metrics.RecordRegistration("weak_password")
		return models.User{}, &WeakPasswordError{Violations: violations}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	now := a.now()
	user := models.User{
		ID:           a.ids.Generate(),
		Email:        &email,
		PasswordHash: &hash,
		DisplayName:  models.StringPtr(strings.TrimSpace(req.DisplayName)),
		Role:         models.RoleAuthor,
		IsActive:     true,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			a.metrics.RecordRegistration("email_taken")
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Str("func", "*authService.Register").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", created.ID).Msg("user registered")
	a.metrics.RecordRegistration("success")
	return created, nil
}

func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error looking up user")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if user.HasPassword() {
		ok, err := utils.VerifyPassword(req.CurrentPassword, *user.PasswordHash)
		if err != nil {
			log.Err(err).Str("func", "*authService.ChangePassword").Str("user_id", userID).Msg("stored password hash cannot be verified")
		}
		if !ok {
			return ErrInvalidCredentials
		}
	}

	if ok, violations := a.guard.ValidatePasswordStrength(req.NewPassword); !ok {
		return &WeakPasswordError{Violations: violations}
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error hashing password")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := a.users.UpdatePassword(ctx, userID, hash, a.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error storing password")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.ChangePassword").Str("user_id", userID).Msg("password changed")
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/mock"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockGuard) {
	users := mock.NewMockUserRepository(ctrl)
	guard := mock.NewMockGuard(ctrl)
	return NewAuthService(users, guard, &seqIDs{}, metrics.Nop{}, fixedClock), users, guard
}

func activeUser(t *testing.T, password string) models.User {
	return models.User{
		ID:           "u-1",
		Email:        strPtr("alice@example.com"),
		PasswordHash: mustHash(t, password),
		Role:         models.RoleAuthor,
		IsActive:     true,
	}
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl)
	ctx := context.Background()
	user := activeUser(t, "Secr3t!pass")

	gomock.InOrder(
		users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil),
		users.EXPECT().UpdateLastLogin(ctx, "u-1", testNow).Return(nil),
	)

	got, err := svc.Authenticate(ctx, "  Alice@Example.COM ", "Secr3t!pass")

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	require.NotNil(t, got.LastLoginAt)
	assert.Equal(t, testNow, *got.LastLoginAt)
}

func TestAuthService_Authenticate_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     func(t *testing.T) models.User
		findErr  error
		password string
	}{
		{
			name:     "unknown email",
			user:     func(*testing.T) models.User { return models.User{} },
			findErr:  store.ErrNotFound,
			password: "Secr3t!pass",
		},
		{
			name: "account without password",
			user: func(*testing.T) models.User {
				return models.User{ID: "u-1", Email: strPtr("alice@example.com"), IsActive: true}
			},
			password: "Secr3t!pass",
		},
		{
			name:     "wrong password",
			user:     func(t *testing.T) models.User { return activeUser(t, "Secr3t!pass") },
			password: "guess",
		},
		{
			name: "wrong password on disabled account",
			user: func(t *testing.T) models.User {
				u := activeUser(t, "Secr3t!pass")
				u.IsActive = false
				return u
			},
			password: "guess",
		},
		{
			name: "unsupported stored hash",
			user: func(*testing.T) models.User {
				u := models.User{ID: "u-1", IsActive: true}
				u.PasswordHash = strPtr("plaintext")
				return u
			},
			password: "plaintext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestAuthService(ctrl)
			ctx := context.Background()

			users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(tt.user(t), tt.findErr)

			_, err := svc.Authenticate(ctx, "alice@example.com", tt.password)

			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, "InvalidCredentials", KindOf(err))
		})
	}
}

func TestDummyHash_AlwaysDecodable(t *testing.T) {
	hash := dummyHash()
	require.True(t, strings.HasPrefix(hash, "$argon2id$"), hash)

	ok, err := utils.VerifyPassword("Secr3t!pass", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	// the decoy follows the configured cost
	saved := utils.PasswordHashParams
	t.Cleanup(func() { utils.PasswordHashParams = saved })
	costlier := *saved
	costlier.Memory = saved.Memory * 2
	utils.PasswordHashParams = &costlier

	hash = dummyHash()
	assert.Contains(t, hash, fmt.Sprintf("m=%d,", costlier.Memory))
	_, err = utils.VerifyPassword("Secr3t!pass", hash)
	require.NoError(t, err)
}

func TestAuthService_Authenticate_DisabledOnlyAfterPasswordMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl)
	ctx := context.Background()
	user := activeUser(t, "Secr3t!pass")
	user.IsActive = false

	users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)

	_, err := svc.Authenticate(ctx, "alice@example.com", "Secr3t!pass")

	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_Authenticate_UpgradesLegacyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("Secr3t!pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := activeUser(t, "unused")
	user.PasswordHash = strPtr(string(legacy))

	gomock.InOrder(
		users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil),
		users.EXPECT().UpdatePassword(ctx, "u-1", gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _ string, hash string, _ time.Time) error {
				assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "upgraded hash must be argon2id")
				return nil
			}),
		users.EXPECT().UpdateLastLogin(ctx, "u-1", testNow).Return(nil),
	)

	_, err = svc.Authenticate(ctx, "alice@example.com", "Secr3t!pass")

	require.NoError(t, err)
}

func TestAuthService_Authenticate_RehashFailureDoesNotBlockLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("Secr3t!pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := activeUser(t, "unused")
	user.PasswordHash = strPtr(string(legacy))

	users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	users.EXPECT().UpdatePassword(ctx, "u-1", gomock.Any(), testNow).Return(errors.New("db down"))
	users.EXPECT().UpdateLastLogin(ctx, "u-1", testNow).Return(nil)

	_, err = svc.Authenticate(ctx, "alice@example.com", "Secr3t!pass")

	require.NoError(t, err)
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindByEmail(ctx, "alice@example.com").Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Authenticate(ctx, "alice@example.com", "Secr3t!pass")

	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, guard := newTestAuthService(ctrl)
	ctx := context.Background()

	guard.EXPECT().ValidateEmailShape("bob@example.com").Return(true)
	guard.EXPECT().ValidatePasswordStrength("Str0ng!pass").Return(true, nil)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "id-1", u.ID)
		assert.Equal(t, "bob@example.com", models.StringValue(u.Email))
		assert.Equal(t, "Bob", models.StringValue(u.DisplayName))
		assert.Equal(t, models.RoleAuthor, u.Role)
		assert.True(t, u.IsActive)
		require.NotNil(t, u.PasswordHash)
		assert.NotEqual(t, "Str0ng!pass", *u.PasswordHash)
		assert.True(t, strings.HasPrefix(*u.PasswordHash, "$argon2id$"))
		return u, nil
	})

	got, err := svc.Register(ctx, models.RegisterRequest{
		Email:       " Bob@Example.com",
		Password:    "Str0ng!pass",
		DisplayName: " Bob ",
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	require.NotNil(t, got.LastLoginAt)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, guard := newTestAuthService(ctrl)

	guard.EXPECT().ValidateEmailShape("not-an-email").Return(false)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "not-an-email", Password: "Str0ng!pass"})

	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAuthService_Register_WeakPasswordListsViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, guard := newTestAuthService(ctrl)

	violations := []security.PasswordViolation{security.ViolationTooShort, security.ViolationMissingDigit}
	guard.EXPECT().ValidateEmailShape("bob@example.com").Return(true)
	guard.EXPECT().ValidatePasswordStrength("weak").Return(false, violations)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "bob@example.com", Password: "weak"})

	require.ErrorIs(t, err, ErrWeakPassword)
	var weak *WeakPasswordError
	require.True(t, errors.As(err, &weak))
	assert.Equal(t, violations, weak.Violations)
	assert.Contains(t, err.Error(), "too_short")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, guard := newTestAuthService(ctrl)
	ctx := context.Background()

	guard.EXPECT().ValidateEmailShape("bob@example.com").Return(true)
	guard.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(true, nil)
	users.EXPECT().Create(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailTaken)

	_, err := svc.Register(ctx, models.RegisterRequest{Email: "bob@example.com", Password: "Str0ng!pass"})

	require.ErrorIs(t, err, ErrEmailTaken)
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(ctrl)
		ctx := context.Background()

		users.EXPECT().FindByID(ctx, "u-1").Return(activeUser(t, "Old!pass1"), nil)

		err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "N3w!passw"})

		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, guard := newTestAuthService(ctrl)
		ctx := context.Background()

		users.EXPECT().FindByID(ctx, "u-1").Return(activeUser(t, "Old!pass1"), nil)
		guard.EXPECT().ValidatePasswordStrength("N3w!passw").Return(true, nil)
		users.EXPECT().UpdatePassword(ctx, "u-1", gomock.Any(), testNow).Return(nil)

		err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{CurrentPassword: "Old!pass1", NewPassword: "N3w!passw"})

		require.NoError(t, err)
	})

	t.Run("provider-only account sets first password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, guard := newTestAuthService(ctrl)
		ctx := context.Background()

		users.EXPECT().FindByID(ctx, "u-1").Return(models.User{ID: "u-1", IsActive: true}, nil)
		guard.EXPECT().ValidatePasswordStrength("N3w!passw").Return(true, nil)
		users.EXPECT().UpdatePassword(ctx, "u-1", gomock.Any(), testNow).Return(nil)

		err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{NewPassword: "N3w!passw"})

		require.NoError(t, err)
	})

	t.Run("weak new password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, guard := newTestAuthService(ctrl)
		ctx := context.Background()

		users.EXPECT().FindByID(ctx, "u-1").Return(activeUser(t, "Old!pass1"), nil)
		guard.EXPECT().ValidatePasswordStrength("short").Return(false, []security.PasswordViolation{security.ViolationTooShort})

		err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{CurrentPassword: "Old!pass1", NewPassword: "short"})

		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(ctrl)
		ctx := context.Background()

		users.EXPECT().FindByID(ctx, "ghost").Return(models.User{}, store.ErrNotFound)

		err := svc.ChangePassword(ctx, "ghost", models.ChangePasswordRequest{NewPassword: "N3w!passw"})

		require.ErrorIs(t, err, ErrNotFound)
	})
}

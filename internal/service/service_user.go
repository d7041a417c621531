// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/models"
)

// MaxListLimit caps one page of ListUsers.
const MaxListLimit = 200

type userService struct {
	users store.UserRepository
	now   func() time.Time
}

func NewUserService(users store.UserRepository, now func() time.Time) UserService {
	return &userService{users: users, now: now}
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Msg("error loading user")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	if limit == 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return users, nil
}

// SetRole changes the role of another user. Administrators cannot change
// their own role.
func (s *userService) SetRole(ctx context.Context, actor models.Principal, targetID string, role models.Role) (models.User, error) {
	if !CanManageUsers(actor) || actor.UserID == targetID {
		return models.User{}, ErrForbidden
	}
	if !role.Valid() {
		return models.User{}, ErrInvalidRequest
	}

	if err := s.users.UpdateRole(ctx, targetID, role, s.now()); err != nil {
		return models.User{}, s.mapUpdateErr(ctx, "SetRole", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.SetRole").
		Str("actor_id", actor.UserID).Str("user_id", targetID).Str("role", role.String()).Msg("role changed")
	return s.GetUser(ctx, targetID)
}

// SetActive activates or deactivates another user.
func (s *userService) SetActive(ctx context.Context, actor models.Principal, targetID string, active bool) (models.User, error) {
	if !CanDeleteAccount(actor, targetID) {
		return models.User{}, ErrForbidden
	}

	if err := s.users.SetActive(ctx, targetID, active, s.now()); err != nil {
		return models.User{}, s.mapUpdateErr(ctx, "SetActive", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.SetActive").
		Str("actor_id", actor.UserID).Str("user_id", targetID).Bool("active", active).Msg("activation changed")
	return s.GetUser(ctx, targetID)
}

func (s *userService) mapUpdateErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	logger.FromContext(ctx).Err(err).Str("func", "*userService."+op).Msg("error updating user")
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

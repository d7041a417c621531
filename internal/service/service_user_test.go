// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/knolib-identity/internal/mock"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminActor  = models.Principal{UserID: "admin-1", Role: models.RoleAdmin}
	editorActor = models.Principal{UserID: "editor-1", Role: models.RoleEditor}
)

func TestUserService_SetRole(t *testing.T) {
	t.Run("admin promotes another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := NewUserService(users, fixedClock)
		ctx := context.Background()

		gomock.InOrder(
			users.EXPECT().UpdateRole(ctx, "u-1", models.RoleEditor, testNow).Return(nil),
			users.EXPECT().FindByID(ctx, "u-1").Return(models.User{ID: "u-1", Role: models.RoleEditor}, nil),
		)

		got, err := svc.SetRole(ctx, adminActor, "u-1", models.RoleEditor)

		require.NoError(t, err)
		assert.Equal(t, models.RoleEditor, got.Role)
	})

	for _, tc := range []struct {
		name   string
		actor  models.Principal
		target string
		role   models.Role
		want   error
	}{
		{"editor cannot change roles", editorActor, "u-1", models.RoleAuthor, ErrForbidden},
		{"admin cannot change own role", adminActor, "admin-1", models.RoleAuthor, ErrForbidden},
		{"unknown role", adminActor, "u-1", models.Role("ROOT"), ErrInvalidRequest},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewUserService(mock.NewMockUserRepository(ctrl), fixedClock)

			_, err := svc.SetRole(context.Background(), tc.actor, tc.target, tc.role)

			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("unknown target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := NewUserService(users, fixedClock)

		users.EXPECT().UpdateRole(gomock.Any(), "ghost", models.RoleAuthor, testNow).Return(store.ErrNotFound)

		_, err := svc.SetRole(context.Background(), adminActor, "ghost", models.RoleAuthor)

		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, fixedClock)
	ctx := context.Background()

	_, err := svc.SetActive(ctx, adminActor, "admin-1", false)
	require.ErrorIs(t, err, ErrForbidden, "self deactivation")

	_, err = svc.SetActive(ctx, editorActor, "u-1", false)
	require.ErrorIs(t, err, ErrForbidden, "non-admin")

	users.EXPECT().SetActive(ctx, "u-1", false, testNow).Return(nil)
	users.EXPECT().FindByID(ctx, "u-1").Return(models.User{ID: "u-1", IsActive: false}, nil)

	got, err := svc.SetActive(ctx, adminActor, "u-1", false)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUserService_ListUsers_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, fixedClock)
	ctx := context.Background()

	users.EXPECT().List(ctx, uint64(MaxListLimit), uint64(0)).Return(nil, nil)
	users.EXPECT().List(ctx, uint64(MaxListLimit), uint64(400)).Return(nil, nil)
	users.EXPECT().List(ctx, uint64(10), uint64(20)).Return([]models.User{{ID: "u-1"}}, nil)

	_, err := svc.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	_, err = svc.ListUsers(ctx, 10_000, 400)
	require.NoError(t, err)
	got, err := svc.ListUsers(ctx, 10, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(users, fixedClock)

	users.EXPECT().FindByID(gomock.Any(), "ghost").Return(models.User{}, store.ErrNotFound)

	_, err := svc.GetUser(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/knolib-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	active := true
	negative := -1

	tests := []struct {
		name    string
		value   any
		wantErr error
		wantMsg string
	}{
		{
			name:  "valid register",
			value: &models.RegisterRequest{Email: "a@x.com", Password: "Abc123!@"},
		},
		{
			name:    "missing email",
			value:   models.RegisterRequest{Password: "Abc123!@"},
			wantErr: ErrInvalidInput,
			wantMsg: "email is required",
		},
		{
			name:    "password too long",
			value:   models.LoginRequest{Email: "a@x.com", Password: strings.Repeat("a", 129)},
			wantErr: ErrInvalidInput,
			wantMsg: "password must be at most 128 characters",
		},
		{
			name:    "unknown role",
			value:   models.RoleUpdateRequest{Role: "ROOT"},
			wantErr: ErrInvalidInput,
			wantMsg: "role must be one of",
		},
		{
			name:  "active flag",
			value: models.ActiveUpdateRequest{Active: &active},
		},
		{
			name:    "missing active flag",
			value:   models.ActiveUpdateRequest{},
			wantErr: ErrInvalidInput,
			wantMsg: "active is required",
		},
		{
			name:    "negative provider order",
			value:   models.ProviderConfigUpdate{Name: "github", Order: &negative},
			wantErr: ErrInvalidInput,
			wantMsg: "order must be at least 0",
		},
		{
			name:    "not a struct",
			value:   "a@x.com",
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "nil pointer",
			value:   (*models.LoginRequest)(nil),
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRequestValidator_PartialFields(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	// only Password is checked, the missing email is ignored
	err := v.Validate(ctx, models.LoginRequest{Password: "secret"}, "Password")
	require.NoError(t, err)

	err = v.Validate(ctx, models.LoginRequest{Password: "secret"}, "Nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	assert.Equal(t, AppBuildInfo{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123"},
		NewAppBuildInfo("1.4.0", "2026-10-01", "abc123"))
	assert.Equal(t, AppBuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"},
		NewAppBuildInfo("", "", ""))
}

func TestUserPrincipal(t *testing.T) {
	u := User{ID: "u-1", Role: RoleEditor, PasswordHash: StringPtr("$argon2id$...")}

	assert.Equal(t, Principal{UserID: "u-1", Role: RoleEditor}, u.Principal())
	assert.True(t, u.HasPassword())
	assert.False(t, User{}.HasPassword())
}

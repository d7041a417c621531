// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/knolib-identity/models"
)

var (
	userColumns = []string{
		"id", "email", "password_hash", "display_name", "avatar",
		"role", "is_active", "last_login_at", "created_at", "updated_at",
	}
	identityColumns = []string{
		"id", "user_id", "provider", "provider_account_id",
		"access_token", "refresh_token", "created_at",
	}
	providerColumns = []string{
		"name", "display_name", "client_id", "client_secret", "enabled",
		"sort_order", "icon", "color", "created_at", "updated_at",
	}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.PasswordHash, u.DisplayName, u.Avatar,
			string(u.Role), u.IsActive, u.LastLoginAt, u.CreatedAt, u.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Sqlizer, forUpdate bool) (string, []any, error) {
	q := b.Select(userColumns...).From(models.User{}.TableName()).Where(where)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q.ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, limit, offset uint64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id string, set map[string]any, at time.Time) (string, []any, error) {
	set["updated_at"] = at
	return b.Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── accounts ──────────────────────────────────────────────────────────────────

func buildInsertIdentityQuery(b sq.StatementBuilderType, l models.LinkedIdentity) (string, []any, error) {
	return b.Insert(models.LinkedIdentity{}.TableName()).
		Columns(identityColumns...).
		Values(l.ID, l.UserID, l.ProviderName, l.ProviderAccountID, l.AccessToken, l.RefreshToken, l.CreatedAt).
		ToSql()
}

func buildSelectIdentityQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	return b.Select(identityColumns...).
		From(models.LinkedIdentity{}.TableName()).
		Where(where).
		OrderBy("created_at", "provider").
		ToSql()
}

func buildUpdateIdentityTokensQuery(b sq.StatementBuilderType, id string, access, refresh *string) (string, []any, error) {
	return b.Update(models.LinkedIdentity{}.TableName()).
		Set("access_token", access).
		Set("refresh_token", refresh).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteIdentityQuery(b sq.StatementBuilderType, userID, provider string) (string, []any, error) {
	return b.Delete(models.LinkedIdentity{}.TableName()).
		Where(sq.Eq{"user_id": userID, "provider": provider}).
		ToSql()
}

// ── provider_configs ──────────────────────────────────────────────────────────

func buildSelectProvidersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	q := b.Select(providerColumns...).
		From(models.ProviderConfig{}.TableName()).
		OrderBy("sort_order", "name")
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

// buildUpsertProviderQuery inserts a provider or, when it exists, updates
// only the fields present in the update. Absent fields keep their stored
// value (or the column default on insert).
func buildUpsertProviderQuery(b sq.StatementBuilderType, u models.ProviderConfigUpdate, at time.Time) (string, []any, error) {
	columns := []string{"name", "created_at", "updated_at"}
	values := []any{u.Name, at, at}
	sets := []string{"updated_at = excluded.updated_at"}

	add := func(column string, value any) {
		columns = append(columns, column)
		values = append(values, value)
		sets = append(sets, column+" = excluded."+column)
	}

	if u.DisplayName != nil {
		add("display_name", *u.DisplayName)
	}
	if u.ClientID != nil {
		add("client_id", *u.ClientID)
	}
	if u.ClientSecret != nil {
		add("client_secret", *u.ClientSecret)
	}
	if u.Enabled != nil {
		add("enabled", *u.Enabled)
	}
	if u.Order != nil {
		add("sort_order", *u.Order)
	}
	if u.Icon != nil {
		add("icon", *u.Icon)
	}
	if u.Color != nil {
		add("color", *u.Color)
	}

	return b.Insert(models.ProviderConfig{}.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (name) DO UPDATE SET " + strings.Join(sets, ", ")).
		ToSql()
}

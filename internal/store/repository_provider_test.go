// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/knolib-identity/models"
)

var testProviderCols = []string{
	"name", "display_name", "client_id", "client_secret", "enabled",
	"sort_order", "icon", "color", "created_at", "updated_at",
}

func TestProviderRepository_ListEnabled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .* FROM provider_configs WHERE enabled = \$1 ORDER BY sort_order, name`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(testProviderCols).
			AddRow("github", "GitHub", "cid", "secret", true, 0, "github.svg", "#000", now, now).
			AddRow("google", "Google", "cid2", "secret2", true, 1, "", "", now, now))

	got, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "github", got[0].Name)
	assert.Equal(t, 1, got[1].Order)
	assert.True(t, got[0].HasCredentials())
}

func TestProviderRepository_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)

	mock.ExpectQuery(`SELECT .* FROM provider_configs ORDER BY sort_order, name`).
		WillReturnRows(sqlmock.NewRows(testProviderCols))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProviderRepository_ScanErrors(t *testing.T) {
	now := time.Now().UTC()
	badRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(testProviderCols).
			AddRow("github", "GitHub", "cid", "secret", true, "first", "", "", now, now)
	}

	t.Run("list", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProviderRepository(db)
		mock.ExpectQuery(`SELECT .* FROM provider_configs`).WillReturnRows(badRow())

		got, err := repo.ListAll(context.Background())
		require.ErrorIs(t, err, ErrScanningRow)
		assert.Nil(t, got)
	})

	t.Run("find by name", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProviderRepository(db)
		mock.ExpectQuery(`SELECT .* FROM provider_configs`).WithArgs("github").WillReturnRows(badRow())

		_, err := repo.FindByName(context.Background(), "github")
		require.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("find by name missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProviderRepository(db)
		mock.ExpectQuery(`SELECT .* FROM provider_configs`).WithArgs("gitlab").WillReturnRows(sqlmock.NewRows(testProviderCols))

		_, err := repo.FindByName(context.Background(), "gitlab")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProviderRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProviderRepository(db)
	now := time.Now().UTC()

	update := models.ProviderConfigUpdate{
		Name:    "github",
		Enabled: boolPtr(false),
	}

	mock.ExpectExec(`INSERT INTO provider_configs \(name,created_at,updated_at,enabled\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(name\) DO UPDATE SET updated_at = excluded.updated_at, enabled = excluded.enabled`).
		WithArgs("github", now, now, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM provider_configs WHERE name = \$1`).
		WithArgs("github").
		WillReturnRows(sqlmock.NewRows(testProviderCols).
			AddRow("github", "GitHub", "cid", "secret", false, 0, "", "", now, now))

	got, err := repo.Upsert(context.Background(), update, now)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Equal(t, "cid", got.ClientID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildUpsertProviderQuery_AllFields(t *testing.T) {
	now := time.Now()
	update := models.ProviderConfigUpdate{
		Name:         "gitee",
		DisplayName:  models.StringPtr("Gitee"),
		ClientID:     models.StringPtr("id"),
		ClientSecret: models.StringPtr("secret"),
		Enabled:      boolPtr(true),
		Order:        intPtr(3),
		Icon:         models.StringPtr("gitee.svg"),
		Color:        models.StringPtr("#c71d23"),
	}

	query, args, err := buildUpsertProviderQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), update, now)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO provider_configs (name,created_at,updated_at,display_name,client_id,client_secret,enabled,sort_order,icon,color) "+
			"VALUES (?,?,?,?,?,?,?,?,?,?) "+
			"ON CONFLICT (name) DO UPDATE SET updated_at = excluded.updated_at, display_name = excluded.display_name, "+
			"client_id = excluded.client_id, client_secret = excluded.client_secret, enabled = excluded.enabled, "+
			"sort_order = excluded.sort_order, icon = excluded.icon, color = excluded.color",
		query)
	assert.Equal(t, []any{"gitee", now, now, "Gitee", "id", "secret", true, 3, "gitee.svg", "#c71d23"}, args)
}

func TestBuildSelectUserQuery_Placeholders(t *testing.T) {
	query, _, err := buildSelectUserQuery(sq.StatementBuilder.PlaceholderFormat(sq.Question), sq.Eq{"id": "u"}, false)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, email, password_hash, display_name, avatar, role, is_active, last_login_at, created_at, updated_at FROM users WHERE id = ?",
		query)
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

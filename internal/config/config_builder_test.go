// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:      App{TokenSignKey: "secret"},
		Security: Security{RedirectAllowlist: []string{"knolib.com"}},
		OAuth:    OAuth{CallbackBaseURL: "https://id.knolib.com"},
		Storage:  Storage{DB: DB{DSN: "postgres://localhost/identity"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.StateDuration)
	assert.Equal(t, DefaultLoginMaxAttempts, cfg.Security.LoginMaxAttempts)
	assert.Equal(t, DefaultLoginWindow, cfg.Security.LoginWindow)
	assert.Equal(t, 8, cfg.Security.PasswordMinLength)
	assert.Equal(t, DefaultRedirect, cfg.Security.DefaultRedirect)
	assert.Equal(t, DefaultOAuthTimeout, cfg.OAuth.RequestTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	first := minimalConfig()
	first.Server.HTTPAddress = "localhost:8080"
	first.App.TokenIssuer = "env-issuer"
	second := &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:9000"},
	}
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	// zero-valued fields in later sources leave earlier values in place
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{
			name:   "missing sign key",
			mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			want:   ErrInvalidAppConfigs,
		},
		{
			name:   "missing dsn",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "empty allowlist outside development",
			mutate: func(cfg *StructuredConfig) { cfg.Security.RedirectAllowlist = nil },
			want:   ErrInvalidSecurityConfigs,
		},
		{
			name:   "relative callback url",
			mutate: func(cfg *StructuredConfig) { cfg.OAuth.CallbackBaseURL = "/callback" },
			want:   ErrInvalidOAuthConfigs,
		},
		{
			name:   "malformed trusted proxy",
			mutate: func(cfg *StructuredConfig) { cfg.Server.TrustedProxies = []string{"10.0.0.0/33"} },
			want:   ErrInvalidServerConfigs,
		},
		{
			name:   "negative attempts",
			mutate: func(cfg *StructuredConfig) { cfg.Security.LoginMaxAttempts = -1 },
			want:   ErrInvalidSecurityConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestValidate_DevelopmentModeDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		App:      App{TokenSignKey: "secret"},
		Security: Security{DevelopmentMode: true},
		Storage:  Storage{DB: DB{DSN: "sqlite://identity.db"}},
		Server:   Server{HTTPAddress: "127.0.0.1:8081"},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, "http://localhost:8081", cfg.OAuth.CallbackBaseURL)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://env/db",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "postgres://env/db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SECURITY_LOGIN_MAX_ATTEMPTS": "many"})

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-d", "postgres://flags/db"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://flags/db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "json-key"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", b.configs[1].App.TokenSignKey)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()
	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.TokenIssuer)
}

func TestBuild_EnvFlagsAndJSONChain(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"security": map[string]any{"redirect_allowlist": []string{"knolib.com"}},
		"oauth":    map[string]any{"callback_base_url": "https://id.knolib.com"},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://env/db",
		"CONFIG":                  path,
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "postgres://flags/db"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://flags/db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"knolib.com"}, cfg.Security.RedirectAllowlist)
	assert.Equal(t, "https://id.knolib.com", cfg.OAuth.CallbackBaseURL)
}

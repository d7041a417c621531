// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		StateDuration Duration `json:"state_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Security struct {
		RedirectAllowlist []string `json:"redirect_allowlist"`
		DevelopmentMode   bool     `json:"development_mode"`
		DefaultRedirect   string   `json:"default_redirect"`
		LoginMaxAttempts  int      `json:"login_max_attempts"`
		LoginWindow       Duration `json:"login_window"`
		PasswordMinLength int      `json:"password_min_length"`
	} `json:"security,omitempty"`

	OAuth struct {
		CallbackBaseURL        string   `json:"callback_base_url"`
		RequestTimeout         Duration `json:"request_timeout"`
		DisableAutoLinkByEmail bool     `json:"disable_auto_link_by_email"`
	} `json:"oauth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ThrottleRPS    float64  `json:"throttle_rps"`
		ThrottleBurst  int      `json:"throttle_burst"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			StateDuration: time.Duration(jsonCfg.App.StateDuration),
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Security: Security{
			RedirectAllowlist: jsonCfg.Security.RedirectAllowlist,
			DevelopmentMode:   jsonCfg.Security.DevelopmentMode,
			DefaultRedirect:   jsonCfg.Security.DefaultRedirect,
			LoginMaxAttempts:  jsonCfg.Security.LoginMaxAttempts,
			LoginWindow:       time.Duration(jsonCfg.Security.LoginWindow),
			PasswordMinLength: jsonCfg.Security.PasswordMinLength,
		},
		OAuth: OAuth{
			CallbackBaseURL:        jsonCfg.OAuth.CallbackBaseURL,
			RequestTimeout:         time.Duration(jsonCfg.OAuth.RequestTimeout),
			DisableAutoLinkByEmail: jsonCfg.OAuth.DisableAutoLinkByEmail,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			ThrottleRPS:    jsonCfg.Server.ThrottleRPS,
			ThrottleBurst:  jsonCfg.Server.ThrottleBurst,
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

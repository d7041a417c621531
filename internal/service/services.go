// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/internal/validators"
)

// Services groups every service the transports depend on.
type Services struct {
	AuthService      AuthService
	RateLimitService RateLimitService
	SessionService   SessionService
	LinkService      LinkService
	OAuthService     OAuthService
	ProviderService  ProviderService
	UserService      UserService
	AppInfoService   AppInfoService
}

// Deps are the collaborators shared by all services.
type Deps struct {
	Repositories *store.Repositories
	Guard        Guard
	Registry     ProviderRegistry
	Validator    validators.Validator
	IDs          utils.IDGenerator
	Metrics      metrics.Recorder
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewServices(deps Deps, cfg config.StructuredConfig) (*Services, error) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	recorder := deps.Metrics
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	repos := deps.Repositories

	appInfo, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionService(repos.Users, cfg.App, recorder, now)
	links := NewLinkService(repos, deps.Guard, deps.IDs, now, LinkOptions{
		AutoLinkByEmail: !cfg.OAuth.DisableAutoLinkByEmail,
	})

	return &Services{
		AuthService: NewAuthService(repos.Users, deps.Guard, deps.IDs, recorder, now),
		RateLimitService: NewRateLimitService(deps.Guard, RateLimits{
			MaxAttempts: cfg.Security.LoginMaxAttempts,
			Window:      cfg.Security.LoginWindow,
		}, recorder),
		SessionService:  sessions,
		LinkService:     links,
		OAuthService:    NewOAuthService(deps.Registry, deps.Guard, links, sessions, deps.IDs, recorder, NewOAuthSettings(cfg), now),
		ProviderService: NewProviderService(repos.Providers, deps.Registry, deps.Validator, now),
		UserService:     NewUserService(repos.Users, now),
		AppInfoService:  appInfo,
	}, nil
}

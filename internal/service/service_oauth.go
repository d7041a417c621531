// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/oauth"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// OAuthSettings configures an OAuthService.
type OAuthSettings struct {
	SignKey         string
	Issuer          string
	StateDuration   time.Duration
	RequestTimeout  time.Duration
	DefaultRedirect string
}

// NewOAuthSettings collects the OAuth settings from the configuration.
func NewOAuthSettings(cfg config.StructuredConfig) OAuthSettings {
	return OAuthSettings{
		SignKey:         cfg.App.TokenSignKey,
		Issuer:          cfg.App.TokenIssuer,
		StateDuration:   cfg.App.StateDuration,
		RequestTimeout:  cfg.OAuth.RequestTimeout,
		DefaultRedirect: cfg.Security.DefaultRedirect,
	}
}

type oauthService struct {
	registry ProviderRegistry
	guard    Guard
	links    LinkService
	sessions SessionService
	ids      utils.IDGenerator
	metrics  metrics.Recorder
	settings OAuthSettings
	now      func() time.Time
}

func NewOAuthService(registry ProviderRegistry, guard Guard, links LinkService, sessions SessionService,
	ids utils.IDGenerator, recorder metrics.Recorder, settings OAuthSettings, now func() time.Time) OAuthService {
	return &oauthService{
		registry: registry,
		guard:    guard,
		links:    links,
		sessions: sessions,
		ids:      ids,
		metrics:  recorder,
		settings: settings,
		now:      now,
	}
}

// BeginAuthorization validates the redirect before touching provider
// configuration. An empty redirect selects the configured default target.
func (s *oauthService) BeginAuthorization(ctx context.Context, provider, redirect, linkUserID string) (models.AuthorizationStart, error) {
	log := logger.FromContext(ctx)

	if redirect == "" {
		redirect = s.settings.DefaultRedirect
	} else if !s.guard.ValidateRedirect(redirect) {
		log.Warn().Str("func", "*oauthService.BeginAuthorization").Str("provider", provider).Msg("rejected redirect target")
		return models.AuthorizationStart{}, ErrInvalidRedirect
	}

	descriptor, err := s.registry.Resolve(ctx, provider)
	if err != nil {
		if isServiceError(err) {
			return models.AuthorizationStart{}, err
		}
		return models.AuthorizationStart{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	state := models.StateClaims{
		Provider:   provider,
		Redirect:   redirect,
		LinkUserID: linkUserID,
	}
	state.ID = s.ids.Generate()

	issuedAt := s.now()
	signed, err := utils.GenerateStateToken(s.settings.Issuer, state, issuedAt, s.settings.StateDuration, s.settings.SignKey)
	if err != nil {
		log.Err(err).Str("func", "*oauthService.BeginAuthorization").Msg("error signing state")
		return models.AuthorizationStart{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.AuthorizationStart{
		URL:       descriptor.Flow.AuthCodeURL(signed),
		Nonce:     state.ID,
		ExpiresAt: issuedAt.Add(s.settings.StateDuration),
	}, nil
}

func (s *oauthService) VerifyState(ctx context.Context, provider, state string) (models.StateClaims, error) {
	claims, err := utils.ParseStateToken(state, s.settings.SignKey, s.settings.Issuer, s.now())
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*oauthService.VerifyState").Str("provider", provider).Msg("rejected state")
		return models.StateClaims{}, ErrInvalidState
	}
	if claims.Provider != provider {
		return models.StateClaims{}, ErrInvalidState
	}
	return claims, nil
}

// CompleteAuthorization bounds the provider round trips by the configured
// request timeout. Every upstream failure becomes ErrProviderUnavailable.
func (s *oauthService) CompleteAuthorization(ctx context.Context, provider, code string) (models.NormalizedProfile, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return models.NormalizedProfile{}, ErrInvalidRequest
	}

	descriptor, err := s.registry.Resolve(ctx, provider)
	if err != nil {
		if isServiceError(err) {
			return models.NormalizedProfile{}, err
		}
		return models.NormalizedProfile{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	exchangeCtx := ctx
	if s.settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		exchangeCtx, cancel = context.WithTimeout(ctx, s.settings.RequestTimeout)
		defer cancel()
	}

	profile, err := descriptor.Flow.Exchange(exchangeCtx, code)
	if err != nil {
		log.Err(err).Str("func", "*oauthService.CompleteAuthorization").Str("provider", provider).Msg("provider exchange failed")
		s.metrics.RecordOAuthCallback(provider, "provider_unavailable")
		return models.NormalizedProfile{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return profile, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider, code, state, nonce string) (models.CallbackResult, error) {
	log := logger.FromContext(ctx)

	claims, err := s.VerifyState(ctx, provider, state)
	if err != nil {
		s.metrics.RecordOAuthCallback(provider, "invalid_state")
		return models.CallbackResult{}, err
	}
	// a state handed to another browser arrives without its nonce
	if nonce == "" || subtle.ConstantTimeCompare([]byte(nonce), []byte(claims.ID)) != 1 {
		log.Warn().Str("func", "*oauthService.HandleCallback").Str("provider", provider).Msg("state nonce mismatch")
		s.metrics.RecordOAuthCallback(provider, "invalid_state")
		return models.CallbackResult{}, ErrInvalidState
	}
	if !s.guard.CheckRate(ctx, security.KeyOAuthState+claims.ID, 1, s.settings.StateDuration) {
		log.Warn().Str("func", "*oauthService.HandleCallback").Str("provider", provider).Msg("state replayed")
		s.metrics.RecordOAuthCallback(provider, "invalid_state")
		return models.CallbackResult{}, ErrInvalidState
	}
	result := models.CallbackResult{Redirect: claims.Redirect}

	profile, err := s.CompleteAuthorization(ctx, provider, code)
	if err != nil {
		return result, err
	}

	if claims.LinkUserID != "" {
		if _, err := s.links.LinkIdentity(ctx, claims.LinkUserID, provider, profile); err != nil {
			s.metrics.RecordOAuthCallback(provider, outcome(err))
			return result, err
		}
		result.Linked = true
		s.metrics.RecordOAuthCallback(provider, "linked")
		return result, nil
	}

	user, err := s.links.LinkOrCreateUser(ctx, profile, provider)
	if err != nil {
		s.metrics.RecordOAuthCallback(provider, outcome(err))
		s.metrics.RecordLogin("oauth", outcome(err))
		return result, err
	}

	token, err := s.sessions.IssueToken(ctx, user.Principal())
	if err != nil {
		return result, err
	}

	log.Info().Str("func", "*oauthService.HandleCallback").Str("provider", provider).Str("user_id", user.ID).Msg("signed in with provider")
	s.metrics.RecordOAuthCallback(provider, "success")
	s.metrics.RecordLogin("oauth", "success")

	result.User = user
	result.Token = token
	return result, nil
}

// outcome turns an error into a metric label.
func outcome(err error) string {
	if errors.Is(err, ErrInternal) || !isServiceError(err) {
		return "error"
	}
	return KindOf(err)
}

var _ ProviderRegistry = (*oauth.Registry)(nil)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// sessionService issues HS256 session tokens. Tokens are never stored or
// revoked individually; deactivation takes effect through Authorize.
type sessionService struct {
	users         store.UserRepository
	signKey       string
	issuer        string
	tokenDuration time.Duration
	metrics       metrics.Recorder
	now           func() time.Time
}

func NewSessionService(users store.UserRepository, cfg config.App, recorder metrics.Recorder, now func() time.Time) SessionService {
	return &sessionService{
		users:         users,
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		metrics:       recorder,
		now:           now,
	}
}

func (s *sessionService) IssueToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	token, err := utils.GenerateSessionToken(s.issuer, principal, s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.IssueToken").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	s.metrics.RecordTokenIssued()
	return token, nil
}

func (s *sessionService) VerifyToken(ctx context.Context, token string) (models.Principal, error) {
	principal, err := utils.ParseSessionToken(token, s.signKey, s.issuer, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*sessionService.VerifyToken").Msg("token rejected")
		return models.Principal{}, ErrUnauthorized
	}
	return principal, nil
}

// Authorize keeps the role of the token; only account existence and the
// active flag are re-read.
func (s *sessionService) Authorize(ctx context.Context, token string) (models.Principal, error) {
	principal, err := s.VerifyToken(ctx, token)
	if err != nil {
		return models.Principal{}, err
	}

	user, err := s.users.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Principal{}, ErrUnauthorized
		}
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Authorize").Msg("error loading user")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !user.IsActive {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrAccountDisabled)
	}

	return principal, nil
}

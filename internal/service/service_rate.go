// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/security"
)

// RateLimits configures the sign-in limits. Every limit counts attempts per
// key within a fixed window.
type RateLimits struct {
	MaxAttempts int
	Window      time.Duration
}

type rateLimitService struct {
	guard   Guard
	limits  RateLimits
	metrics metrics.Recorder
}

func NewRateLimitService(guard Guard, limits RateLimits, recorder metrics.Recorder) RateLimitService {
	return &rateLimitService{guard: guard, limits: limits, metrics: recorder}
}

// AllowLogin limits attempts per email and per client address. Both
// counters advance on every call.
func (s *rateLimitService) AllowLogin(ctx context.Context, email, clientIP string) error {
	byEmail := s.guard.CheckRate(ctx, security.KeyLoginEmail+security.NormalizeEmail(email), s.limits.MaxAttempts, s.limits.Window)
	// IPs get headroom for users sharing a NAT
	byIP := s.guard.CheckRate(ctx, security.KeyLoginIP+clientIP, s.limits.MaxAttempts*4, s.limits.Window)

	if !byEmail || !byIP {
		scope := "login_ip"
		if !byEmail {
			scope = "login_email"
		}
		s.metrics.RecordRateLimited(scope)
		logger.FromContext(ctx).Warn().Str("func", "*rateLimitService.AllowLogin").Str("scope", scope).Msg("login rate limited")
		return ErrRateLimited
	}
	return nil
}

func (s *rateLimitService) AllowRegister(ctx context.Context, clientIP string) error {
	if !s.guard.CheckRate(ctx, security.KeyRegisterIP+clientIP, s.limits.MaxAttempts, s.limits.Window) {
		s.metrics.RecordRateLimited("register_ip")
		return ErrRateLimited
	}
	return nil
}

func (s *rateLimitService) AllowOAuth(ctx context.Context, clientIP string) error {
	if !s.guard.CheckRate(ctx, security.KeyOAuthIP+clientIP, s.limits.MaxAttempts*4, s.limits.Window) {
		s.metrics.RecordRateLimited("oauth_ip")
		return ErrRateLimited
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/netip"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a [Handler]. Zero values disable the optional parts.
type Options struct {
	// Validator checks decoded request bodies. Defaults to
	// [validators.NewRequestValidator].
	Validator validators.Validator
	Metrics   metrics.Recorder
	// Gatherer backs GET /metrics. The route is not registered when nil.
	Gatherer prometheus.Gatherer

	RequestTimeout time.Duration
	ThrottleRPS    float64
	ThrottleBurst  int
	// TrustedProxies are the peers whose forwarded client address headers
	// are honoured. Forwarded headers are ignored when empty.
	TrustedProxies []netip.Prefix
	// SecureCookies marks the OAuth nonce cookie Secure. Set it when the
	// service is reached over https.
	SecureCookies bool
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   metrics.Recorder
	gatherer  prometheus.Gatherer
	throttle  *ipThrottle
	timeout   time.Duration

	trustedProxies []netip.Prefix
	secureCookies  bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, opts Options, logger *logger.Logger) *Handler {
	if opts.Validator == nil {
		opts.Validator = validators.NewRequestValidator()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: opts.Validator,
		metrics:   opts.Metrics,
		gatherer:  opts.Gatherer,
		throttle:  newIPThrottle(opts.ThrottleRPS, opts.ThrottleBurst, time.Now),
		timeout:   opts.RequestTimeout,

		trustedProxies: opts.TrustedProxies,
		secureCookies:  opts.SecureCookies,

		logger: logger,
	}
}

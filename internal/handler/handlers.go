// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/handler/grpc"
	"github.com/MKhiriev/knolib-identity/internal/handler/http"
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// opts.RequestTimeout, the throttle settings and the trusted proxies default
// to the values in cfg.
func NewHandlers(services *service.Services, cfg config.Server, opts http.Options, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if opts.RequestTimeout == 0 {
			opts.RequestTimeout = cfg.RequestTimeout
		}
		if opts.ThrottleRPS == 0 {
			opts.ThrottleRPS = cfg.ThrottleRPS
			opts.ThrottleBurst = cfg.ThrottleBurst
		}
		if opts.TrustedProxies == nil {
			for _, proxy := range cfg.TrustedProxies {
				prefix, err := config.ParseTrustedProxy(proxy)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", config.ErrInvalidServerConfigs, err)
				}
				opts.TrustedProxies = append(opts.TrustedProxies, prefix)
			}
		}
		handlers.HTTP = http.NewHandler(services, opts, logger.WithComponent("http"))
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger.WithComponent("grpc"))
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

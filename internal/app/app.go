// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the identity service from its configuration: the
// database, the rate-limit store, the provider registry, the services and
// the transports.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/handler"
	"github.com/MKhiriev/knolib-identity/internal/handler/http"
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/MKhiriev/knolib-identity/internal/oauth"
	"github.com/MKhiriev/knolib-identity/internal/security"
	"github.com/MKhiriev/knolib-identity/internal/server"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/store"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/internal/validators"
	"github.com/MKhiriev/knolib-identity/internal/workers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces the rate-limit counters in a shared Redis.
const redisKeyPrefix = "knolib:identity:rate:"

type App struct {
	db      *store.DB
	redis   *redis.Client
	server  server.Server
	workers *workers.Workers
	logger  *logger.Logger
}

// New connects to the storage backends, runs the migrations and builds the
// transports. Resources opened before a failure are released.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (app *App, err error) {
	app = &App{logger: log, workers: workers.NewWorkers()}
	defer func() {
		if err != nil {
			_ = app.Close()
			app = nil
		}
	}()

	app.db, err = store.Open(ctx, cfg.Storage.DB.DSN, log.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = app.db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	rateStore, err := app.newRateStore(ctx, cfg.Storage.Redis)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	repos := store.NewRepositories(app.db)
	guard := security.NewGuard(rateStore, security.Policy{
		RedirectAllowlist: cfg.Security.RedirectAllowlist,
		DevelopmentMode:   cfg.Security.DevelopmentMode,
		PasswordMinLength: cfg.Security.PasswordMinLength,
	})
	providers := oauth.NewRegistry(repos.Providers, oauth.DefaultCatalog(),
		utils.NewHTTPClient(cfg.OAuth.RequestTimeout), cfg.OAuth.CallbackBaseURL)
	validator := validators.NewRequestValidator()

	services, err := service.NewServices(service.Deps{
		Repositories: repos,
		Guard:        guard,
		Registry:     providers,
		Validator:    validator,
		IDs:          utils.NewUUIDGenerator(),
		Metrics:      recorder,
	}, *cfg)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, http.Options{
		Validator: validator,
		Metrics:   recorder,
		Gatherer:  registry,
		// the provider redirects back to the callback base URL
		SecureCookies: strings.HasPrefix(cfg.OAuth.CallbackBaseURL, "https://"),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	app.server, err = server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return app, nil
}

// newRateStore returns the shared Redis store when an address is configured
// and the in-memory store, swept by a janitor, otherwise.
func (a *App) newRateStore(ctx context.Context, cfg config.Redis) (security.RateStore, error) {
	if cfg.Address == "" {
		memory := security.NewMemoryRateStore()
		a.workers = workers.NewWorkers(
			workers.NewRateStoreJanitor(memory, workers.DefaultSweepInterval, a.logger.WithComponent("janitor")),
		)
		a.logger.Info().Msg("using in-memory rate limit store")
		return memory, nil
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Address, err)
	}
	a.logger.Info().Str("address", cfg.Address).Msg("using redis rate limit store")
	return security.NewRedisRateStore(a.redis, redisKeyPrefix), nil
}

// Run starts the background workers and blocks until the servers stopped.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)
	a.server.RunServer()
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/handler"
	"github.com/MKhiriev/knolib-identity/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger.WithComponent("http"))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcServer, err := newGRPCServer(handlers.GRPC, cfg, logger.WithComponent("grpc"))
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until a stop signal arrives or every transport stopped on
// its own, then shuts the remaining ones down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}

func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup
	launch := func(name string, run func()) {
		s.logger.Info().Msgf("Launching %s server", name)
		wg.Add(1)
		go func() {
			defer wg.Done()
			run()
		}()
	}

	// launch all created servers
	if s.httpServer != nil {
		launch("HTTP", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		launch("GRPC", s.gRPCServer.RunServer)
	}

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case <-stopped:
		s.logger.Warn().Msg("all servers stopped unexpectedly")
	}

	// finish started servers
	s.Shutdown()
	<-stopped
	s.logger.Info().Msg("server Shutdown gracefully")
}

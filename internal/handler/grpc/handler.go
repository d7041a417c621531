// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It serves the principal verification service used by internal
// collaborators and the standard health service. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services
	health   *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// ServerOptions returns the interceptors every request passes through.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withRecovery),
	}
}

// Register attaches the principal and health services to s and marks them
// serving.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&PrincipalsServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(PrincipalsServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown reports NOT_SERVING to health probes before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

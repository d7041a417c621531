// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const traceIDKey = "x-trace-id"

// maxTraceIDLength bounds caller-supplied trace ids before they reach the
// logs.
const maxTraceIDLength = 128

// withTraceID attaches a child logger carrying trace_id to the context and
// echoes the id in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}

func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error().
				Interface("panic", p).
				Str("method", info.FullMethod).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			err = status.Error(codes.Internal, "internal error")
		}
	}()
	return next(ctx, req)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/config"
	"github.com/MKhiriev/knolib-identity/internal/handler"
	"github.com/MKhiriev/knolib-identity/internal/handler/http"
	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, http.Options{}, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenFailure(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:-1"}

	_, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("servers did not shut down")
	}

	// a second shutdown is a no-op
	assert.NotPanics(t, srv.Shutdown)
}

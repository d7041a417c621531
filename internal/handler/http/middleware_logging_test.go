// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request with a buffer-backed logger in its
// context, the way withTraceID leaves it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func loggingHandler() *Handler {
	return &Handler{metrics: metrics.Nop{}}
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
		checkLogExcludes []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/auth/providers",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/auth/providers"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"remote_ip":"192.0.2.1"`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/auth/register",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":201`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/api/user/identities/github",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query string is not logged",
			method:          http.MethodGet,
			path:            "/api/auth/oauth/github/callback?code=secret-code&state=abc",
			handlerStatus:   http.StatusFound,
			handlerResponse: "",
			checkLogContains: []string{
				`"uri":"/api/auth/oauth/github/callback"`,
				`"status":302`,
			},
			checkLogExcludes: []string{"secret-code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			loggingHandler().withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected)
			}
			for _, excluded := range tt.checkLogExcludes {
				assert.NotContains(t, logOutput, excluded)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	rr := httptest.NewRecorder()
	loggingHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := &Handler{metrics: metrics.NewCollector(reg)}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusConflict)
	})

	var logBuf bytes.Buffer
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodPut, "/x", &logBuf))

	count, err := testutil.GatherAndCount(reg, "identity_http_requests_total", "identity_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		loggingHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}

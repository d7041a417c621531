// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
)

// withLogging writes one access log entry per request and records the
// request in the metrics. Query strings are left out of the log because
// OAuth callbacks carry authorization codes in them.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.RecordHTTPRequest(method, status, duration)
		log.Info().
			Str("uri", path).
			Str("method", method).
			Str("remote_ip", clientIP(r)).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

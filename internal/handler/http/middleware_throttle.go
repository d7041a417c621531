// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/service"
	"golang.org/x/time/rate"
)

// throttleIdleTTL is how long an idle client keeps its token bucket.
const throttleIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipThrottle holds one token bucket per client address. It guards the whole
// surface against floods; the per-account login limits live in the
// services.
type ipThrottle struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

// newIPThrottle returns nil when rps is not positive, which disables
// throttling.
func newIPThrottle(rps float64, burst int, now func() time.Time) *ipThrottle {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = int(rps) + 1
	}
	return &ipThrottle{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Limit(rps),
		burst:     burst,
		now:       now,
		lastSweep: now(),
	}
}

func (t *ipThrottle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Sub(t.lastSweep) > throttleIdleTTL {
		for key, c := range t.clients {
			if now.Sub(c.lastSeen) > throttleIdleTTL {
				delete(t.clients, key)
			}
		}
		t.lastSweep = now
	}

	c, ok := t.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (h *Handler) withThrottle(next http.Handler) http.Handler {
	if h.throttle == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.throttle.allow(clientIP(r)) {
			h.metrics.RecordRateLimited("http_ip")
			h.writeError(w, r, service.ErrRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the caller address. withRealIP has already replaced
// RemoteAddr with the forwarded address when a trusted proxy sent one.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

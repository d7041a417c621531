// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes authentication metrics in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by services and HTTP middleware.
type Recorder interface {
	RecordLogin(method, outcome string)
	RecordRegistration(outcome string)
	RecordRateLimited(scope string)
	RecordOAuthCallback(provider, outcome string)
	RecordTokenIssued()
	RecordHTTPRequest(method string, status int, duration time.Duration)
}

// Collector is the Prometheus implementation of [Recorder].
type Collector struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	rateLimited   *prometheus.CounterVec
	oauth         *prometheus.CounterVec
	tokensIssued  prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_login_attempts_total",
			Help: "Sign-in attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_registrations_total",
			Help: "Credential registrations by outcome.",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_rate_limited_total",
			Help: "Requests rejected by the rate limiter by scope.",
		}, []string{"scope"}),
		oauth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_oauth_callbacks_total",
			Help: "OAuth callbacks by provider and outcome.",
		}, []string{"provider", "outcome"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "identity_tokens_issued_total",
			Help: "Session tokens issued.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "identity_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "identity_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(
		c.logins,
		c.registrations,
		c.rateLimited,
		c.oauth,
		c.tokensIssued,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

func (c *Collector) RecordLogin(method, outcome string) {
	c.logins.WithLabelValues(method, outcome).Inc()
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRateLimited(scope string) {
	c.rateLimited.WithLabelValues(scope).Inc()
}

func (c *Collector) RecordOAuthCallback(provider, outcome string) {
	c.oauth.WithLabelValues(provider, outcome).Inc()
}

func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

func (c *Collector) RecordHTTPRequest(method string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [Recorder] that drops everything.
type Nop struct{}

func (Nop) RecordLogin(string, string) {}
func (Nop) RecordRegistration(string) {}
func (Nop) RecordRateLimited(string) {}
func (Nop) RecordOAuthCallback(string, string) {}
func (Nop) RecordTokenIssued() {}
func (Nop) RecordHTTPRequest(string, int, time.Duration) {}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the identity service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, per-client throttling and bearer
// authentication are handled in this package before requests are delegated
// to the service layer. Every failure is rendered as
//
//	{"error":{"kind":"InvalidCredentials","message":"..."}}
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package security implements the abuse-protection checks shared by every
// authentication entry point: a keyed fixed-window rate limiter over an
// injectable [RateStore], redirect-target allowlisting, the password
// strength policy and structural email validation.
package security

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"time"
)

// RateStore keeps fixed-window attempt counters.
//
// Incr adds one attempt for key and returns the number of attempts in the
// current window, including this one. When no window is open for key, or the
// open one has elapsed, a new window of the given length starts and 1 is
// returned. Implementations must be safe for concurrent use.
type RateStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Rate-limit key namespaces.
const (
	KeyLoginEmail = "login:email:"
	KeyLoginIP    = "login:ip:"
	KeyRegisterIP = "register:ip:"
	KeyOAuthIP    = "oauth:ip:"
	// KeyOAuthState marks a state nonce as spent.
	KeyOAuthState = "oauth:state:"
)

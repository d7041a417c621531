// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations start their own goroutines and stop
// them when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper drops expired entries and reports how many were removed.
// [security.MemoryRateStore] implements it.
type Sweeper interface {
	Sweep() int
}

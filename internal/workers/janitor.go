// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/knolib-identity/internal/logger"
)

// DefaultSweepInterval is how often the in-memory rate store is swept.
const DefaultSweepInterval = time.Minute

// RateStoreJanitor periodically removes expired rate-limit windows from an
// in-memory store. Redis expires its keys on its own and needs no janitor.
type RateStoreJanitor struct {
	store    Sweeper
	interval time.Duration
	logger   *logger.Logger

	// done is closed when the sweep loop exits.
	done chan struct{}
}

func NewRateStoreJanitor(store Sweeper, interval time.Duration, logger *logger.Logger) *RateStoreJanitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &RateStoreJanitor{
		store:    store,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (j *RateStoreJanitor) Run(ctx context.Context) {
	go j.loop(ctx)
}

// Done is closed once the janitor stopped.
func (j *RateStoreJanitor) Done() <-chan struct{} {
	return j.done
}

func (j *RateStoreJanitor) loop(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Debug().Dur("interval", j.interval).Msg("rate store janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Debug().Msg("rate store janitor stopped")
			return
		case <-ticker.C:
			if removed := j.store.Sweep(); removed > 0 {
				j.logger.Debug().Int("removed", removed).Msg("expired rate windows swept")
			}
		}
	}
}

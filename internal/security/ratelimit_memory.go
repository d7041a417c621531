// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

const defaultShards = 32

type window struct {
	count   int64
	resetAt time.Time
}

type shard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// MemoryRateStore is a [RateStore] for single-instance deployments. Keys
// are spread across independently locked shards; expired windows are removed
// by [MemoryRateStore.Sweep].
type MemoryRateStore struct {
	shards []*shard
	now    func() time.Time
}

// MemoryOption configures a [MemoryRateStore].
type MemoryOption func(*MemoryRateStore)

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryRateStore) {
		s.now = now
	}
}

// WithShards sets the number of shards. Values below 1 are ignored.
func WithShards(n int) MemoryOption {
	return func(s *MemoryRateStore) {
		if n > 0 {
			s.shards = newShards(n)
		}
	}
}

func NewMemoryRateStore(opts ...MemoryOption) *MemoryRateStore {
	s := &MemoryRateStore{
		shards: newShards(defaultShards),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryRateStore) Incr(_ context.Context, key string, length time.Duration) (int64, error) {
	now := s.now()
	sh := s.shardFor(key)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	w, ok := sh.windows[key]
	if !ok || !now.Before(w.resetAt) {
		sh.windows[key] = &window{count: 1, resetAt: now.Add(length)}
		return 1, nil
	}

	w.count++
	return w.count, nil
}

// Sweep removes every window that has elapsed and returns how many were
// removed.
func (s *MemoryRateStore) Sweep() int {
	now := s.now()
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for key, w := range sh.windows {
			if !now.Before(w.resetAt) {
				delete(sh.windows, key)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// Len returns the number of tracked keys.
func (s *MemoryRateStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.windows)
		sh.mu.Unlock()
	}
	return n
}

func (s *MemoryRateStore) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}

func newShards(n int) []*shard {
	shards := make([]*shard, n)
	for i := range shards {
		shards[i] = &shard{windows: make(map[string]*window)}
	}
	return shards
}

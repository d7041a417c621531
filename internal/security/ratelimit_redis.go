// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrWindow increments the counter and opens a window on the first hit. The
// TTL check also repairs counters that lost their expiry.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RedisRateStore is a [RateStore] shared by all instances of the service.
// Windows are represented by key expiry.
type RedisRateStore struct {
	client redis.Scripter
	prefix string
}

// NewRedisRateStore creates a store that namespaces its keys with prefix.
func NewRedisRateStore(client redis.Scripter, prefix string) *RedisRateStore {
	return &RedisRateStore{client: client, prefix: prefix}
}

func (s *RedisRateStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	n, err := incrWindow.Run(ctx, s.client, []string{s.prefix + key}, ms).Int64()
	if err != nil {
		return 0, fmt.Errorf("error incrementing rate counter: %w", err)
	}
	return n, nil
}

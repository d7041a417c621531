// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisRateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRateStore(client, "ratelimit:"), mr
}

func TestRedisRateStore_FixedWindow(t *testing.T) {
	s, mr := newTestRedisStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.Incr(ctx, "login:email:a@x.com", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.True(t, mr.Exists("ratelimit:login:email:a@x.com"))
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:login:email:a@x.com"))

	mr.FastForward(time.Minute)
	got, err := s.Incr(ctx, "login:email:a@x.com", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisRateStore_RepairsMissingTTL(t *testing.T) {
	s, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("ratelimit:k", "7"))

	got, err := s.Incr(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got)
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:k"))
}

func TestRedisRateStore_GuardIntegration(t *testing.T) {
	s, _ := newTestRedisStore(t)
	g := NewGuard(s, Policy{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.True(t, g.CheckRate(ctx, "k", 5, time.Minute))
	}
	assert.False(t, g.CheckRate(ctx, "k", 5, time.Minute))
}

func TestRedisRateStore_Unavailable(t *testing.T) {
	s, mr := newTestRedisStore(t)
	mr.Close()

	_, err := s.Incr(context.Background(), "k", time.Minute)
	assert.Error(t, err)
}

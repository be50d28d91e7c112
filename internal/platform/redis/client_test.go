// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/platform/redis"
)

func TestOptions(t *testing.T) {
	options, err := redis.Options("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, 10, options.PoolSize)

	_, err = redis.Options("http://not-redis")
	assert.Error(t, err)
}

/*
TestNewClient dials a live server and fails fast once it goes away.
*/
func TestNewClient(t *testing.T) {
	server := miniredis.RunT(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := context.Background()

	client, err := redis.NewClient(ctx, "redis://"+server.Addr()+"/0", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, redis.Ping(ctx, client))

	server.Close()
	assert.ErrorContains(t, redis.Ping(ctx, client), "ping failed")

	_, err = redis.NewClient(ctx, "redis://"+server.Addr()+"/0", logger)
	assert.Error(t, err)
}

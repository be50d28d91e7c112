// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/catalog/catalogtest"
	"github.com/taibuivan/super3000/internal/core/browse"
	"github.com/taibuivan/super3000/internal/core/contact"
	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/i18n"
	"github.com/taibuivan/super3000/internal/platform/apperr"
	"github.com/taibuivan/super3000/internal/platform/constants"
)

// newRedisRepository starts an in-process Redis and a repository bound to it.
func newRedisRepository(t *testing.T) (*browse.RedisRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return browse.NewRedisRepository(client), server
}

func storedSession(id string) browse.Session {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return browse.Session{
		ID:        id,
		State:     facet.State{Search: "oil", Origin: "Korean", Make: "Kia", Model: "Rio", Year: "2013"},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}
}

/*
TestRedisRepository_RoundTrip verifies a saved session reads back intact and is
stored as JSON under the browse key prefix with the requested TTL.
*/
func TestRedisRepository_RoundTrip(t *testing.T) {
	repository, server := newRedisRepository(t)
	ctx := context.Background()
	session := storedSession("s1")

	require.NoError(t, repository.Save(ctx, session, time.Minute))

	key := constants.RedisPrefixBrowseSession + "s1"
	require.True(t, server.Exists(key))
	assert.Equal(t, time.Minute, server.TTL(key))

	payload, err := server.Get(key)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "s1",
		"state": {"search": "oil", "category": "", "origin": "Korean", "make": "Kia", "model": "Rio", "year": "2013"},
		"created_at": "2026-03-01T10:00:00Z",
		"updated_at": "2026-03-01T10:01:00Z"
	}`, payload)

	loaded, err := repository.Get(ctx, "s1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, session.State, loaded.State)
	assert.True(t, session.CreatedAt.Equal(loaded.CreatedAt))
	assert.True(t, session.UpdatedAt.Equal(loaded.UpdatedAt))
}

/*
TestRedisRepository_SlidingTTL verifies that reads extend a session and idle
sessions expire into NOT_FOUND.
*/
func TestRedisRepository_SlidingTTL(t *testing.T) {
	repository, server := newRedisRepository(t)
	ctx := context.Background()
	key := constants.RedisPrefixBrowseSession + "s1"

	require.NoError(t, repository.Save(ctx, storedSession("s1"), time.Minute))

	// Touched just before expiry, the session gets a fresh full TTL
	server.FastForward(50 * time.Second)
	assert.Equal(t, 10*time.Second, server.TTL(key))

	_, err := repository.Get(ctx, "s1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, server.TTL(key))

	server.FastForward(50 * time.Second)
	_, err = repository.Get(ctx, "s1", time.Minute)
	require.NoError(t, err)

	// Left idle past the TTL, it is gone
	server.FastForward(61 * time.Second)
	assert.False(t, server.Exists(key))

	_, err = repository.Get(ctx, "s1", time.Minute)
	assertNotFound(t, err)
}

/*
TestRedisRepository_Missing verifies unknown, deleted and undecodable entries.
*/
func TestRedisRepository_Missing(t *testing.T) {
	repository, server := newRedisRepository(t)
	ctx := context.Background()

	t.Run("unknown_id", func(t *testing.T) {
		_, err := repository.Get(ctx, "nope", time.Minute)
		assertNotFound(t, err)
	})

	t.Run("deleted", func(t *testing.T) {
		require.NoError(t, repository.Save(ctx, storedSession("s2"), time.Minute))
		require.NoError(t, repository.Delete(ctx, "s2"))

		assert.False(t, server.Exists(constants.RedisPrefixBrowseSession+"s2"))
		_, err := repository.Get(ctx, "s2", time.Minute)
		assertNotFound(t, err)
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		assert.NoError(t, repository.Delete(ctx, "never-saved"))
	})

	t.Run("corrupt_payload", func(t *testing.T) {
		require.NoError(t, server.Set(constants.RedisPrefixBrowseSession+"bad", "{not json"))

		_, err := repository.Get(ctx, "bad", time.Minute)
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	})
}

/*
TestService_WithRedisRepository runs a session's lifecycle through the Redis store.
*/
func TestService_WithRedisRepository(t *testing.T) {
	repository, server := newRedisRepository(t)
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	lister := products.NewService(catalogtest.Index(), contact.NewService("+2010", logger), logger)
	service := browse.NewService(repository, lister, sessionTTL, logger)

	view, err := service.Create(ctx, i18n.English, []facet.Transition{edit(facet.FieldMake, "Toyota")})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids(view))
	assert.Equal(t, sessionTTL, server.TTL(constants.RedisPrefixBrowseSession+view.ID))

	view, err = service.Apply(ctx, view.ID, i18n.English, []facet.Transition{edit(facet.FieldMake, "Kia")})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids(view))

	view, err = service.Get(ctx, view.ID, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "Kia", view.State.Make)

	require.NoError(t, service.Delete(ctx, view.ID))
	_, err = service.Get(ctx, view.ID, i18n.English)
	assertNotFound(t, err)
	assert.Empty(t, server.Keys())
}

/*
TestRedisRepository_Unreachable verifies connection failures surface as
internal errors rather than as missing sessions.
*/
func TestRedisRepository_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	repository := browse.NewRedisRepository(client)
	ctx := context.Background()

	assertInternal := func(t *testing.T, err error) {
		t.Helper()
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	}

	assertInternal(t, repository.Save(ctx, browse.Session{ID: "s1"}, time.Minute))

	_, err := repository.Get(ctx, "s1", time.Minute)
	assertInternal(t, err)

	assertInternal(t, repository.Delete(ctx, "s1"))
}

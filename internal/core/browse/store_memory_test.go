// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/super3000/internal/core/browse"
	"github.com/taibuivan/super3000/internal/facet"
	"github.com/taibuivan/super3000/internal/platform/apperr"
)

// clock is a manually advanced time source.
type clock struct {
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

/*
TestMemoryRepository_SlidingTTL verifies that reads extend a session and idle
sessions expire.
*/
func TestMemoryRepository_SlidingTTL(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	repository := browse.NewMemoryRepositoryWithClock(c.Now)

	session := browse.Session{ID: "s1", State: facet.State{Make: "Kia"}}
	require.NoError(t, repository.Save(ctx, session, 10*time.Minute))

	c.Advance(9 * time.Minute)
	got, err := repository.Get(ctx, "s1", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "Kia", got.State.Make)

	c.Advance(9 * time.Minute)
	_, err = repository.Get(ctx, "s1", 10*time.Minute)
	require.NoError(t, err, "read at 9m should have extended the session")

	c.Advance(10 * time.Minute)
	_, err = repository.Get(ctx, "s1", 10*time.Minute)
	assertNotFound(t, err)
	assert.Zero(t, repository.Len())
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repository := browse.NewMemoryRepository()
	require.NoError(t, repository.Save(ctx, browse.Session{ID: "s1"}, time.Minute))

	got, err := repository.Get(ctx, "s1", time.Minute)
	require.NoError(t, err)
	got.State.Make = "Toyota"

	again, err := repository.Get(ctx, "s1", time.Minute)
	require.NoError(t, err)
	assert.Empty(t, again.State.Make)
}

func TestMemoryRepository_DeleteAndSweep(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	repository := browse.NewMemoryRepositoryWithClock(c.Now)

	require.NoError(t, repository.Save(ctx, browse.Session{ID: "short"}, time.Minute))
	require.NoError(t, repository.Save(ctx, browse.Session{ID: "long"}, time.Hour))
	require.NoError(t, repository.Save(ctx, browse.Session{ID: "gone"}, time.Hour))

	require.NoError(t, repository.Delete(ctx, "gone"))
	require.NoError(t, repository.Delete(ctx, "gone"), "deleting twice is not an error")
	_, err := repository.Get(ctx, "missing", time.Minute)
	assertNotFound(t, err)

	c.Advance(2 * time.Minute)
	assert.Equal(t, 1, repository.Sweep())
	assert.Equal(t, 1, repository.Len())

	_, err = repository.Get(ctx, "long", time.Hour)
	assert.NoError(t, err)
}

// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/super3000/internal/platform/constants"
	"github.com/taibuivan/super3000/internal/platform/dberr"
)

// RedisRepository stores sessions as JSON strings under
// [constants.RedisPrefixBrowseSession].
type RedisRepository struct {
	client redis.Cmdable
}

// NewRedisRepository creates a [RedisRepository].
func NewRedisRepository(client redis.Cmdable) *RedisRepository {
	return &RedisRepository{client: client}
}

func sessionKey(id string) string {
	return constants.RedisPrefixBrowseSession + id
}

// Save implements [Repository].
func (repository *RedisRepository) Save(ctx context.Context, session Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("browse: failed to encode session: %w", err)
	}

	if err := repository.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return dberr.Wrap(err, "Browse session")
	}
	return nil
}

// Get implements [Repository]. GETEX reads and slides the TTL in one round trip.
func (repository *RedisRepository) Get(ctx context.Context, id string, ttl time.Duration) (*Session, error) {
	payload, err := repository.client.GetEx(ctx, sessionKey(id), ttl).Bytes()
	if err != nil {
		return nil, dberr.Wrap(err, "Browse session")
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, dberr.Wrap(fmt.Errorf("decode: %w", err), "Browse session")
	}
	return &session, nil
}

// Delete implements [Repository].
func (repository *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := repository.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return dberr.Wrap(err, "Browse session")
	}
	return nil
}

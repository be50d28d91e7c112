// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level storage errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/super3000/internal/platform/apperr"
)

// Wrap inspects a storage error and wraps it into a meaningful [apperr.AppError].
// It hides internal storage details from the client while classifying the error type.
//
// Missing rows (pgx) and missing keys (Redis) become NOT_FOUND for resource.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, redis.Nil) {
		return apperr.NotFound(resource)
	}

	// 3. Everything else is an Internal Server Error
	return apperr.Internal(fmt.Errorf("%s: %w", resource, err))
}

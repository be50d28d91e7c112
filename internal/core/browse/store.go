// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"time"
)

// Repository stores sessions with an idle TTL.
//
// Implementations report a missing or expired session as
// apperr NOT_FOUND.
type Repository interface {
	// Save creates or replaces session and resets its TTL.
	Save(ctx context.Context, session Session, ttl time.Duration) error

	// Get returns session id and extends its TTL.
	Get(ctx context.Context, id string, ttl time.Duration) (*Session, error)

	// Delete removes session id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

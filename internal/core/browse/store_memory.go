// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package browse

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/super3000/internal/platform/apperr"
)

// MemoryRepository keeps sessions in process memory. It serves single-replica
// deployments without Redis, and tests.
//
// Expired sessions are dropped lazily on access and by [MemoryRepository.Sweep].
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryRepository creates an empty [MemoryRepository].
func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositoryWithClock(time.Now)
}

// NewMemoryRepositoryWithClock creates a [MemoryRepository] reading time from now.
func NewMemoryRepositoryWithClock(now func() time.Time) *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]memoryEntry), now: now}
}

// Save implements [Repository].
func (repository *MemoryRepository) Save(_ context.Context, session Session, ttl time.Duration) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.sessions[session.ID] = memoryEntry{session: session, expiresAt: repository.now().Add(ttl)}
	return nil
}

// Get implements [Repository].
func (repository *MemoryRepository) Get(_ context.Context, id string, ttl time.Duration) (*Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := repository.now()
	entry, ok := repository.sessions[id]
	if !ok {
		return nil, apperr.NotFound("Browse session")
	}
	if !now.Before(entry.expiresAt) {
		delete(repository.sessions, id)
		return nil, apperr.NotFound("Browse session")
	}

	entry.expiresAt = now.Add(ttl)
	repository.sessions[id] = entry

	session := entry.session
	return &session, nil
}

// Delete implements [Repository].
func (repository *MemoryRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (repository *MemoryRepository) Sweep() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := repository.now()
	removed := 0
	for id, entry := range repository.sessions {
		if !now.Before(entry.expiresAt) {
			delete(repository.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included.
func (repository *MemoryRepository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.sessions)
}

// StartSweeper runs [MemoryRepository.Sweep] every interval until ctx is done.
func (repository *MemoryRepository) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				repository.Sweep()
			}
		}
	}()
}

// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browse keeps a shopper's facet selection between requests.

A session holds one [facet.State]. Every edit goes through the cascading
transitions and is answered with a fresh evaluation of the catalogue, so the
client never has to compute dependent options itself.

# Lifetime

Sessions expire after a fixed idle TTL and are never persisted beyond it.
Concurrent edits to one session are last-writer-wins.
*/
package browse

import (
	"time"

	"github.com/taibuivan/super3000/internal/core/products"
	"github.com/taibuivan/super3000/internal/facet"
)

// Session is the stored selection of one shopper.
type Session struct {
	ID        string      `json:"id"`
	State     facet.State `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// View is a session together with the listing for its state.
type View struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	products.Listing
}

// Lifecycle events, used as the metrics label.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventCleared = "cleared"
	EventDeleted = "deleted"
	EventExpired = "expired"
)

// SourceBrowse labels filter evaluations made for sessions.
const SourceBrowse = "browse"

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package kv defines a small key-value store interface used by the snapshot
// cache and the form rate limiter. Production code injects the Valkey
// implementation; tests inject the in-memory one. Business logic never
// branches on the storage technology directly.
package kv

import (
	"context"
	"time"
)

// Store is a minimal byte-oriented key-value store with optional expiry.
type Store interface {
	// Get returns the value for key. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// snapshot.go provides the resource snapshot cache. Every successful
// public-read query writes its full result set here, wholesale replacing
// the previous snapshot (no merge, no diffing). When the database is
// unreachable, the repository layer serves the last snapshot instead.
package cache

import (
	"context"
	"log/slog"

	"gozcuweb/internal/kv"
)

// snapshotKeyPrefix namespaces snapshot keys in the kv store.
const snapshotKeyPrefix = "snapshot:"

// Snapshots stores serialized result sets per resource key. Snapshots
// never expire by time; they are only ever overwritten wholesale, so a
// stale snapshot remains available for fallback reads indefinitely.
type Snapshots struct {
	store kv.Store
}

// NewSnapshots returns a snapshot cache backed by the given kv store.
func NewSnapshots(store kv.Store) *Snapshots {
	return &Snapshots{store: store}
}

// Get retrieves the stored snapshot for a resource key.
// Returns false on a miss; storage errors are logged and degrade to a miss.
func (s *Snapshots) Get(ctx context.Context, key string) ([]byte, bool) {
	val, ok, err := s.store.Get(ctx, snapshotKeyPrefix+key)
	if err != nil {
		slog.Warn("snapshot get failed", "key", key, "error", err)
		return nil, false
	}
	return val, ok
}

// Set stores a serialized result set for a resource key, fully replacing
// the previous snapshot. Storage errors are logged and swallowed: a failed
// snapshot write must never fail the read that produced it.
func (s *Snapshots) Set(ctx context.Context, key string, data []byte) {
	if err := s.store.Set(ctx, snapshotKeyPrefix+key, data, 0); err != nil {
		slog.Warn("snapshot set failed", "key", key, "error", err)
	}
}

// Invalidate removes the snapshot for a resource key. Called after admin
// writes so the next public read rebuilds from the database.
func (s *Snapshots) Invalidate(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, snapshotKeyPrefix+key); err != nil {
		slog.Warn("snapshot invalidate failed", "key", key, "error", err)
	}
}

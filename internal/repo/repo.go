// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package repo layers the public read path over the stores. Every read
// tries PostgreSQL first; on success the JSON-serialized result set
// replaces the resource's snapshot in the kv store, and on failure the
// last snapshot is served instead. The order is fixed: database, then
// snapshot, then error. Admin reads bypass this package and hit the
// stores directly, so stale data is never shown in the panel.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gozcuweb/internal/cache"
)

// Tier identifies which backing layer served a read.
type Tier string

const (
	TierDatabase Tier = "database"
	TierSnapshot Tier = "snapshot"
)

// ErrAllTiersFailed is returned when the database is unreachable and no
// snapshot exists for the resource.
var ErrAllTiersFailed = errors.New("database unavailable and no snapshot cached")

// fetch runs the database query and falls back to the snapshot cache.
// The winning tier is logged so degraded serving is visible in operations.
func fetch[T any](ctx context.Context, snaps *cache.Snapshots, key string, query func() (T, error)) (T, Tier, error) {
	result, err := query()
	if err == nil {
		if data, merr := json.Marshal(result); merr == nil {
			snaps.Set(ctx, key, data)
		} else {
			slog.Warn("snapshot marshal failed", "key", key, "error", merr)
		}
		return result, TierDatabase, nil
	}

	slog.Warn("database read failed, trying snapshot", "key", key, "error", err)

	data, ok := snaps.Get(ctx, key)
	if !ok {
		var zero T
		return zero, "", fmt.Errorf("read %s: %w", key, ErrAllTiersFailed)
	}
	var result2 T
	if uerr := json.Unmarshal(data, &result2); uerr != nil {
		var zero T
		return zero, "", fmt.Errorf("read %s: decode snapshot: %w", key, uerr)
	}
	slog.Info("serving stale snapshot", "key", key)
	return result2, TierSnapshot, nil
}

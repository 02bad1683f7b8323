// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package repo

import (
	"context"

	"gozcuweb/internal/cache"
	"gozcuweb/internal/models"
)

// settingsKey is the snapshot key for the site settings map.
const settingsKey = "settings"

// SettingsReader is the store surface the settings repository needs.
type SettingsReader interface {
	All() (models.SiteSettings, error)
}

// Settings serves public site configuration reads with snapshot fallback.
type Settings struct {
	store SettingsReader
	snaps *cache.Snapshots
}

// NewSettings returns a settings repository over the given store and snapshot cache.
func NewSettings(s SettingsReader, snaps *cache.Snapshots) *Settings {
	return &Settings{store: s, snaps: snaps}
}

// All returns the full settings map.
func (s *Settings) All(ctx context.Context) (models.SiteSettings, Tier, error) {
	return fetch(ctx, s.snaps, settingsKey, s.store.All)
}

// Invalidate drops the settings snapshot. Called after admin writes.
func (s *Settings) Invalidate(ctx context.Context) {
	s.snaps.Invalidate(ctx, settingsKey)
}

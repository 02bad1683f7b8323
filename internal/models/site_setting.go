// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// SiteSetting represents a single configuration key-value pair.
// Keys are namespaced by section with a dot: "general.site_name",
// "contact.email", "social.twitter", "analytics.ga_id", "seo.meta_title".
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Section returns the subset of settings whose keys belong to the given
// section prefix, with the prefix stripped. Section("contact") returns
// {"email": ..., "phone": ...} for keys "contact.email" and "contact.phone".
func (s SiteSettings) Section(name string) SiteSettings {
	prefix := name + "."
	out := make(SiteSettings)
	for k, v := range s {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

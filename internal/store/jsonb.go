// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all Gözcü site
// entities. Each store struct wraps a *sql.DB and exposes typed query
// methods; callers never assemble SQL or loose payload maps themselves.
package store

import "encoding/json"

// jsonList marshals an ordered string list for a JSONB column.
// A nil slice is stored as an empty JSON array, not NULL.
func jsonList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

// scanList unmarshals a JSONB column back into a string slice.
func scanList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

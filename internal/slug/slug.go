// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings,
// including Turkish titles.
package slug

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// turkish transliterates Turkish letters to their ASCII counterparts
	// before the non-alphanumeric strip, so "Yazılım Çözümleri" becomes
	// "yazilim-cozumleri" instead of losing the letters entirely.
	turkish = strings.NewReplacer(
		"ç", "c", "Ç", "c",
		"ğ", "g", "Ğ", "g",
		"ı", "i", "İ", "i",
		"ö", "o", "Ö", "o",
		"ş", "s", "Ş", "s",
		"ü", "u", "Ü", "u",
	)

	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Bulut Çözümleri 2026" → "bulut-cozumleri-2026"
func Generate(s string) string {
	result := turkish.Replace(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Unique creates a slug from the given string with a time-based suffix
// appended, so two posts with the same title get distinct slugs.
// Example: "Bulut Çözümleri" → "bulut-cozumleri-lx2v9k1q"
func Unique(s string) string {
	base := Generate(s)
	suffix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if base == "" {
		return suffix
	}
	return fmt.Sprintf("%s-%s", base, suffix)
}

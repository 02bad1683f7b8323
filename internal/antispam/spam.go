// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package antispam

import (
	"regexp"
	"strings"
)

var (
	// urlPattern flags any embedded http/https URL.
	urlPattern = regexp.MustCompile(`https?://`)

	// uppercaseRun flags runs of 5 or more consecutive uppercase letters.
	uppercaseRun = regexp.MustCompile(`[A-Z]{5,}`)

	// spamKeywords are matched case-insensitively as substrings.
	spamKeywords = []string{"free", "win", "prize", "money", "cash", "loan", "credit"}
)

// IsSpam applies the spam heuristics to a message that already passed
// field validation. A message is spam if it contains a bare URL, a run of
// uppercase letters, the same character repeated 5+ times consecutively,
// or a known spam keyword.
func IsSpam(message string) bool {
	if urlPattern.MatchString(message) {
		return true
	}
	if uppercaseRun.MatchString(message) {
		return true
	}
	if hasRepeatedRun(message, 5) {
		return true
	}

	lower := strings.ToLower(message)
	for _, kw := range spamKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any rune repeats at least n times
// consecutively. RE2 has no backreferences, so this is a manual scan.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
			if count >= n {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package antispam

import (
	"regexp"
	"strings"
)

// maxFieldLen is the hard cap applied to every sanitized string field.
const maxFieldLen = 1000

// javascriptScheme matches the "javascript:" scheme case-insensitively.
var javascriptScheme = regexp.MustCompile(`(?i)javascript:`)

// Sanitize trims the input, strips angle brackets and javascript: schemes,
// and truncates to 1000 characters. The scheme strip loops until stable so
// nested payloads ("javajavascript:script:") cannot survive a single pass,
// and truncation re-trims in case it exposes trailing whitespace, which
// together make Sanitize idempotent.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")

	for javascriptScheme.MatchString(s) {
		s = javascriptScheme.ReplaceAllString(s, "")
	}

	runes := []rune(s)
	if len(runes) > maxFieldLen {
		s = strings.TrimSpace(string(runes[:maxFieldLen]))
	}
	return s
}

// SanitizeForm applies Sanitize to every field of a contact form.
func SanitizeForm(f ContactForm) ContactForm {
	return ContactForm{
		Name:        Sanitize(f.Name),
		Email:       Sanitize(f.Email),
		Phone:       Sanitize(f.Phone),
		ProjectType: Sanitize(f.ProjectType),
		Message:     Sanitize(f.Message),
	}
}

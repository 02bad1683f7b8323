// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package phone formats free-typed Turkish phone numbers for display.
// Mobile numbers (5XX) and landlines (2XX, 3XX, 4XX) are grouped as
// "5XX XXX XX XX". The canonical form carries the +90 country code.
// No numeric validation is performed here; the contact form accepts
// any phone value, including an empty one.
package phone

import "strings"

// digitsOnly strips everything but ASCII digits from the input.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalize reduces the input to the 10-digit national number, dropping
// a leading 0 trunk prefix or a 90 country code when present.
func normalize(s string) string {
	d := digitsOnly(s)
	switch {
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		return d[1:]
	case len(d) == 12 && strings.HasPrefix(d, "90"):
		return d[2:]
	}
	return d
}

// Format groups the digits of a Turkish phone number for display:
// "5321234567" → "532 123 45 67". Partial input is grouped as far as it
// goes, so the formatter can run on every keystroke.
func Format(input string) string {
	d := normalize(input)
	if len(d) > 10 {
		d = d[:10]
	}

	groups := []int{3, 3, 2, 2}
	var parts []string
	for _, n := range groups {
		if len(d) == 0 {
			break
		}
		if n > len(d) {
			n = len(d)
		}
		parts = append(parts, d[:n])
		d = d[n:]
	}
	return strings.Join(parts, " ")
}

// Canonical returns the number prefixed with the +90 country code, used
// as the stored value. Returns "" unless the input reduces to a complete
// 10-digit national number, so foreign or partial input is left to the
// caller untouched.
func Canonical(input string) string {
	d := normalize(input)
	if len(d) != 10 {
		return ""
	}
	return "+90" + d
}

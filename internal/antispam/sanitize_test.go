package antispam

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  merhaba  ", "merhaba"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"strips javascript scheme", "javascript:alert(1)", "alert(1)"},
		{"strips nested scheme", "javajavascript:script:alert(1)", "alert(1)"},
		{"case insensitive scheme", "JaVaScRiPt:x", "x"},
		{"plain text untouched", "Web sitemizi yenilemek istiyoruz", "Web sitemizi yenilemek istiyoruz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("ş", 1500)
	got := Sanitize(long)
	if n := len([]rune(got)); n != 1000 {
		t.Errorf("truncated length: got %d runes, want 1000", n)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"  <b>merhaba</b>  ",
		"javajavascript:script:alert(1)",
		strings.Repeat("a", 2000),
		// Truncation at the cap lands on a space; the result must not
		// shrink again on a second pass.
		strings.Repeat("a", 999) + " b",
		"normal metin",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeForm(t *testing.T) {
	f := SanitizeForm(ContactForm{
		Name:    " <Ali> ",
		Email:   " ali@example.com ",
		Message: "javascript:merhaba",
	})
	if f.Name != "Ali" {
		t.Errorf("name: got %q", f.Name)
	}
	if f.Email != "ali@example.com" {
		t.Errorf("email: got %q", f.Email)
	}
	if f.Message != "merhaba" {
		t.Errorf("message: got %q", f.Message)
	}
}

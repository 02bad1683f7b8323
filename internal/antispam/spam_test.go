package antispam

import "testing"

func TestIsSpam(t *testing.T) {
	tests := []struct {
		name    string
		message string
		spam    bool
	}{
		{"plain turkish message", "Web sitemizi yenilemek istiyoruz, teklif alabilir miyiz?", false},
		{"http url", "Detaylar burada http://example.com/teklif", true},
		{"https url", "https://spam.example", true},
		{"uppercase run", "BUYUK firsat kacirma", true},
		{"four uppercase ok", "ABCD yeterince kısa", false},
		{"repeated characters", "çooooook güzel bir site", true},
		{"four repeats ok", "coook güzel", false},
		{"keyword free", "This offer is free today", true},
		{"keyword embedded", "freedom makalesi", true}, // substring match, accepted tradeoff
		{"keyword cash uppercase", "Easy CASH now", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSpam(tt.message); got != tt.spam {
				t.Errorf("IsSpam(%q) = %v, want %v", tt.message, got, tt.spam)
			}
		})
	}
}

func TestIsSpamURLMonotone(t *testing.T) {
	// Appending a URL to any clean message must flip it to spam.
	clean := []string{
		"Merhaba, proje hakkında bilgi almak istiyorum.",
		"Bütçemiz sınırlı ama hedefimiz net.",
	}
	for _, msg := range clean {
		if IsSpam(msg) {
			t.Fatalf("fixture %q should be clean", msg)
		}
		if !IsSpam(msg + " https://t.co/x") {
			t.Errorf("adding a URL to %q should make it spam", msg)
		}
	}
}

func TestHasRepeatedRun(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want bool
	}{
		{"aaaaa", 5, true},
		{"aaaa", 5, false},
		{"bbaaaaabb", 5, true},
		{"ababab", 5, false},
		{"ııııı", 5, true}, // multi-byte runes count per rune, not per byte
		{"", 5, false},
	}
	for _, tt := range tests {
		if got := hasRepeatedRun(tt.s, tt.n); got != tt.want {
			t.Errorf("hasRepeatedRun(%q, %d) = %v, want %v", tt.s, tt.n, got, tt.want)
		}
	}
}

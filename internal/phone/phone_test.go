package phone

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare mobile", "5321234567", "532 123 45 67"},
		{"trunk prefix dropped", "05321234567", "532 123 45 67"},
		{"country code dropped", "905321234567", "532 123 45 67"},
		{"already formatted", "532 123 45 67", "532 123 45 67"},
		{"punctuation stripped", "+90 (532) 123-45-67", "532 123 45 67"},
		{"landline", "2121234567", "212 123 45 67"},
		{"partial while typing", "53212", "532 12"},
		{"three digits", "532", "532"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5321234567", "+905321234567"},
		{"0532 123 45 67", "+905321234567"},
		{"+90 532 123 45 67", "+905321234567"},
		// Partial and foreign numbers have no canonical form.
		{"53212", ""},
		{"+44 20 7946 0958", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.input); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

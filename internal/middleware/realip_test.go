package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr only", "203.0.113.7:51234", "", "", "203.0.113.7"},
		{"x-forwarded-for single", "10.0.0.1:80", "198.51.100.4", "", "198.51.100.4"},
		{"x-forwarded-for chain", "10.0.0.1:80", "198.51.100.4, 10.0.0.2, 10.0.0.3", "", "198.51.100.4"},
		{"x-real-ip", "10.0.0.1:80", "", "198.51.100.9", "198.51.100.9"},
		{"xff wins over x-real-ip", "10.0.0.1:80", "198.51.100.4", "198.51.100.9", "198.51.100.4"},
		{"ipv6 remote addr", "[::1]:51234", "", "", "[::1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}

			if got := ClientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

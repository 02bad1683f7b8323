// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"

	"gozcuweb/internal/handlers"
	"gozcuweb/internal/session"
)

// newTestRouter wires the router with empty handler groups. The session
// backend points at a closed port, which the middleware treats as an
// anonymous request; only routes that never reach a store are exercised.
func newTestRouter() http.Handler {
	client := redis.NewClient(&redis.Options{Addr: "localhost:1"})
	sessions := session.NewStore(client, false)

	public := handlers.NewPublic(nil, nil, nil, nil, nil, nil, nil, nil)
	auth := handlers.NewAuth(sessions, nil)
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	return New(sessions, public, auth, admin, []string{"https://www.gozcu.com.tr"})
}

func TestHealthRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body: got %s", rec.Body.String())
	}
}

func TestAdminRouteRequiresSession(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d", rec.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success || env.Error == "" {
		t.Errorf("expected failure envelope, got %+v", env)
	}
}

func TestAdminPostRequiresCSRFToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/api/login",
		strings.NewReader(`{"email":"a@b.co","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}

func TestStaticRobotsServed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/robots.txt", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Disallow: /admin") {
		t.Errorf("body: got %s", rec.Body.String())
	}
}

func TestAdminSPAShellServed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/posts/123", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared infrastructure for handler tests.
// Tests needing PostgreSQL skip when it is unreachable; the snapshot
// cache and rate limiter run on the in-memory kv store, so Valkey is
// only needed by the session-based auth tests.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/cache"
	"gozcuweb/internal/database"
	"gozcuweb/internal/kv"
	"gozcuweb/internal/middleware"
	"gozcuweb/internal/repo"
	"gozcuweb/internal/session"
	"gozcuweb/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens the test PostgreSQL, runs migrations, and skips the test
// when the database is unreachable.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "gozcu")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "gozcuweb")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// publicEnv bundles a Public handler group over the real stores with an
// in-memory kv backing the snapshots and rate limiter.
type publicEnv struct {
	DB     *sql.DB
	KV     *kv.Memory
	Public *Public
}

func newPublicEnv(t *testing.T) *publicEnv {
	t.Helper()

	db := testDB(t)
	mem := kv.NewMemory()
	snaps := cache.NewSnapshots(mem)

	blogStore := store.NewBlogStore(db)
	projectStore := store.NewProjectStore(db)
	planStore := store.NewPlanStore(db)
	contactStore := store.NewContactStore(db)
	newsletterStore := store.NewNewsletterStore(db)
	settingStore := store.NewSiteSettingStore(db)

	public := NewPublic(
		repo.NewSettings(settingStore, snaps),
		repo.NewPlans(planStore, snaps),
		repo.NewBlog(blogStore, snaps),
		repo.NewProjects(projectStore, snaps),
		blogStore, contactStore, newsletterStore,
		antispam.NewRateLimiter(mem),
	)

	return &publicEnv{DB: db, KV: mem, Public: public}
}

// adminEnv bundles an Admin handler group over the real stores.
type adminEnv struct {
	DB    *sql.DB
	Admin *Admin
}

func newAdminEnv(t *testing.T) *adminEnv {
	t.Helper()

	db := testDB(t)
	snaps := cache.NewSnapshots(kv.NewMemory())

	blogStore := store.NewBlogStore(db)
	projectStore := store.NewProjectStore(db)
	planStore := store.NewPlanStore(db)
	contactStore := store.NewContactStore(db)
	newsletterStore := store.NewNewsletterStore(db)
	userStore := store.NewUserStore(db)
	settingStore := store.NewSiteSettingStore(db)
	mediaStore := store.NewMediaStore(db)

	admin := NewAdmin(
		blogStore, projectStore, planStore, contactStore, newsletterStore,
		userStore, settingStore, mediaStore, nil,
		repo.NewBlog(blogStore, snaps),
		repo.NewProjects(projectStore, snaps),
		repo.NewPlans(planStore, snaps),
		repo.NewSettings(settingStore, snaps),
	)

	return &adminEnv{DB: db, Admin: admin}
}

// withURLParam attaches a chi URL parameter to a request.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession attaches session data to a request context.
func withSession(r *http.Request, data *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
}

// testEnvelope mirrors the response envelope for assertions.
type testEnvelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

// cleanContacts removes contact rows created by a test, by email.
func cleanContacts(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM contact_messages WHERE email = $1", e)
	}
}

// cleanPosts removes blog posts created by a test, by title.
func cleanPosts(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM blog_posts WHERE title = $1", title)
	}
}

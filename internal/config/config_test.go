package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port == "" {
		t.Error("expected a default port")
	}
	if cfg.DBHost == "" {
		t.Error("expected a default database host")
	}
	if cfg.S3Bucket == "" {
		t.Error("expected a default bucket name")
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("expected a default CORS origin")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("POSTGRES_USER", "testuser")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("port: got %q, want 9999", cfg.Port)
	}
	if cfg.DBUser != "testuser" {
		t.Errorf("db user: got %q, want testuser", cfg.DBUser)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("origins: got %v", cfg.CORSOrigins)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: "8080"}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q", got)
	}
}

func TestProductionRequiresRealPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("SECURE_COOKIES", "true")

	if _, err := Load(); err == nil {
		t.Error("expected error for default password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "strong-password")
	if _, err := Load(); err != nil {
		t.Errorf("Load with real password: %v", err)
	}
}

func TestProductionRequiresSecureCookies(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "strong-password")
	t.Setenv("SECURE_COOKIES", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for insecure cookies in production")
	}
}

func TestIsDev(t *testing.T) {
	if !(&Config{Env: "development"}).IsDev() {
		t.Error("development should be dev")
	}
	if (&Config{Env: "production"}).IsDev() {
		t.Error("production should not be dev")
	}
}

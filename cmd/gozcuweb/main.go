// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Gözcü web backend. It loads
// configuration, connects to PostgreSQL, Valkey, and object storage,
// wires the handler groups, and runs the HTTP server with graceful
// shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/cache"
	"gozcuweb/internal/config"
	"gozcuweb/internal/database"
	"gozcuweb/internal/handlers"
	"gozcuweb/internal/imaging"
	"gozcuweb/internal/kv"
	"gozcuweb/internal/repo"
	"gozcuweb/internal/router"
	"gozcuweb/internal/session"
	"gozcuweb/internal/storage"
	"gozcuweb/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the super admin, default plans, and default settings. Every
	// group is independently idempotent, so this is safe on restart.
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Valkey: sessions, rate-limit state, and fallback snapshots.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := cfg.SecureCookies || !cfg.IsDev()
	sessions := session.NewStore(valkeyClient, secureCookies)
	kvStore := kv.NewValkey(valkeyClient)
	snapshots := cache.NewSnapshots(kvStore)
	limiter := antispam.NewRateLimiter(kvStore)

	// Stores over PostgreSQL.
	blogStore := store.NewBlogStore(db)
	projectStore := store.NewProjectStore(db)
	planStore := store.NewPlanStore(db)
	contactStore := store.NewContactStore(db)
	newsletterStore := store.NewNewsletterStore(db)
	userStore := store.NewUserStore(db)
	settingStore := store.NewSiteSettingStore(db)
	mediaStore := store.NewMediaStore(db)

	// Fallback repositories for the public read path.
	blogRepo := repo.NewBlog(blogStore, snapshots)
	projectRepo := repo.NewProjects(projectStore, snapshots)
	planRepo := repo.NewPlans(planStore, snapshots)
	settingsRepo := repo.NewSettings(settingStore, snapshots)

	// Object storage is optional; media endpoints report unavailable
	// without it.
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("object storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		imaging.Startup(0)
		defer imaging.Shutdown()
	} else {
		slog.Warn("object storage not configured, media uploads disabled")
	}

	publicHandlers := handlers.NewPublic(settingsRepo, planRepo, blogRepo, projectRepo,
		blogStore, contactStore, newsletterStore, limiter)
	authHandlers := handlers.NewAuth(sessions, userStore)
	adminHandlers := handlers.NewAdmin(blogStore, projectStore, planStore, contactStore,
		newsletterStore, userStore, settingStore, mediaStore, storageClient,
		blogRepo, projectRepo, planRepo, settingsRepo)

	r := router.New(sessions, publicHandlers, authHandlers, adminHandlers, cfg.CORSOrigins)

	// WriteTimeout covers media uploads with rendition generation.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}

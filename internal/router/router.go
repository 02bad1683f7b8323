// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package router wires all HTTP routes and middleware chains. The public
// /api group carries CORS and a per-IP throttle for the marketing
// frontend; the /admin/api group carries sessions, CSRF, and role checks
// for the admin SPA.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"gozcuweb/internal/handlers"
	"gozcuweb/internal/middleware"
	"gozcuweb/internal/models"
	"gozcuweb/internal/session"
	"gozcuweb/web"
)

// New creates the configured chi router.
func New(sessions *session.Store, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	// Public API for the marketing frontend.
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Use(httprate.LimitByIP(120, time.Minute))

		r.Get("/settings", public.Settings)
		r.Get("/plans", public.Plans)
		r.Get("/projects", public.Projects)
		r.Get("/blog", public.BlogList)
		r.Get("/blog/{slug}", public.BlogDetail)
		r.Post("/blog/{slug}/like", public.BlogLike)
		r.Post("/contact", public.ContactSubmit)
		r.Post("/newsletter/subscribe", public.NewsletterSubscribe)
	})

	// Admin API for the embedded SPA. Same-origin only: no CORS here.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.LoadSession(sessions))
		r.Use(middleware.CSRF)

		r.Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// 2FA endpoints need a session but not a completed 2FA check.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", auth.TwoFASetup)
			r.Post("/2fa/verify", auth.TwoFAVerify)
		})

		// Fully authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/me", auth.Me)
			r.Get("/dashboard", admin.Dashboard)

			r.Route("/blog", func(r chi.Router) {
				r.Get("/", admin.BlogList)
				r.Post("/", admin.BlogCreate)
				r.Get("/{id}", admin.BlogGet)
				r.Put("/{id}", admin.BlogUpdate)
				r.Post("/{id}/publish", admin.BlogPublish)
				r.Post("/{id}/unpublish", admin.BlogUnpublish)
				r.Delete("/{id}", admin.BlogDelete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ProjectList)
				r.Post("/", admin.ProjectCreate)
				r.Get("/{id}", admin.ProjectGet)
				r.Put("/{id}", admin.ProjectUpdate)
				r.Post("/{id}/feature", admin.ProjectToggleFeatured)
				r.Post("/{id}/status", admin.ProjectSetStatus)
				r.Delete("/{id}", admin.ProjectDelete)
			})

			r.Route("/plans", func(r chi.Router) {
				r.Get("/", admin.PlanList)
				r.Post("/", admin.PlanCreate)
				r.Post("/reorder", admin.PlanReorder)
				r.Get("/{id}", admin.PlanGet)
				r.Put("/{id}", admin.PlanUpdate)
				r.Post("/{id}/feature", admin.PlanToggleFeatured)
				r.Delete("/{id}", admin.PlanDelete)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", admin.ContactList)
				r.Get("/{id}", admin.ContactGet)
				r.Post("/{id}/status", admin.ContactSetStatus)
				r.Delete("/{id}", admin.ContactDelete)
			})

			r.Route("/newsletter", func(r chi.Router) {
				r.Get("/", admin.NewsletterList)
				r.Post("/unsubscribe", admin.NewsletterUnsubscribe)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", admin.SettingsGet)
				r.Put("/", admin.SettingsUpdate)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaList)
				r.Post("/", admin.MediaUpload)
				r.Delete("/{id}", admin.MediaDelete)
			})

			// Account management is restricted to the admin roles.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleSuperAdmin, models.RoleAdmin))
				r.Get("/", admin.UserList)
				r.Post("/", admin.UserCreate)
				r.Put("/{id}", admin.UserUpdate)
				r.Post("/{id}/password", admin.UserSetPassword)
				r.Post("/{id}/reset-2fa", admin.UserResetTwoFA)
				r.Delete("/{id}", admin.UserDelete)
			})
		})
	})

	// Embedded admin SPA and static assets.
	staticRoot, _ := fs.Sub(web.StaticFS, "static")
	fileServer := http.FileServer(http.FS(staticRoot))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	r.Get("/admin", serveAdminSPA)
	r.Get("/admin/*", serveAdminSPA)

	return r
}

// serveAdminSPA serves the embedded admin single-page app shell. Client
// side routing handles everything under /admin.
func serveAdminSPA(w http.ResponseWriter, r *http.Request) {
	index, err := web.StaticFS.ReadFile("static/admin/index.html")
	if err != nil {
		http.Error(w, "Admin panel not built", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(index)
}

// healthHandler returns a minimal liveness response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

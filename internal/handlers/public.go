// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Gözcü web backend.
// Handlers are grouped by concern (public, auth, admin) and receive their
// dependencies through the handler struct. Every endpoint answers with
// the {success, data, error} JSON envelope.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/markdown"
	"gozcuweb/internal/models"
	"gozcuweb/internal/repo"
	"gozcuweb/internal/store"
)

// Public groups the handlers behind the anonymous /api surface consumed
// by the marketing frontend. Reads go through the repo fallback layer so
// a PostgreSQL outage degrades to cached snapshots instead of errors.
type Public struct {
	settings *repo.Settings
	plans    *repo.Plans
	blog     *repo.Blog
	projects *repo.Projects

	blogStore       *store.BlogStore
	contactStore    *store.ContactStore
	newsletterStore *store.NewsletterStore
	limiter         *antispam.RateLimiter
}

// NewPublic creates the public handler group.
func NewPublic(settings *repo.Settings, plans *repo.Plans, blog *repo.Blog, projects *repo.Projects, blogStore *store.BlogStore, contactStore *store.ContactStore, newsletterStore *store.NewsletterStore, limiter *antispam.RateLimiter) *Public {
	return &Public{
		settings:        settings,
		plans:           plans,
		blog:            blog,
		projects:        projects,
		blogStore:       blogStore,
		contactStore:    contactStore,
		newsletterStore: newsletterStore,
		limiter:         limiter,
	}
}

// errServiceDown is the Turkish message returned when neither the
// database nor the snapshot cache could serve a read.
const errServiceDown = "Hizmet şu anda kullanılamıyor. Lütfen daha sonra tekrar deneyin."

// Settings returns the site settings map (site identity, contact info,
// social links, SEO defaults). Nothing secret is stored in settings.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	settings, tier, err := p.settings.All(r.Context())
	if err != nil {
		slog.Error("public settings read failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	logTier(r, "settings", tier)
	respondData(w, http.StatusOK, settings)
}

// Plans returns active plans, optionally narrowed by plan_type and, for
// cloud plans only, server_type.
func (p *Public) Plans(w http.ResponseWriter, r *http.Request) {
	plans, tier, err := p.plans.Active(r.Context())
	if err != nil {
		slog.Error("public plans read failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	logTier(r, "plans", tier)

	planType := models.PlanType(r.URL.Query().Get("plan_type"))
	serverType := models.ServerType(r.URL.Query().Get("server_type"))
	respondData(w, http.StatusOK, repo.FilterPlans(plans, planType, serverType))
}

// BlogList returns published posts newest first, optionally filtered by
// category. Post content is omitted from the listing payload.
func (p *Public) BlogList(w http.ResponseWriter, r *http.Request) {
	posts, tier, err := p.blog.Published(r.Context())
	if err != nil {
		slog.Error("public blog list failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	logTier(r, "blog", tier)

	category := r.URL.Query().Get("category")

	// The shadow field drops the full Markdown body from the listing.
	type listItem struct {
		models.BlogPost
		Content string `json:"content,omitempty"`
	}
	items := make([]listItem, 0, len(posts))
	for _, post := range posts {
		if category != "" && post.Category != category {
			continue
		}
		items = append(items, listItem{BlogPost: post})
	}
	respondData(w, http.StatusOK, items)
}

// blogPostView is the detail payload: the post plus its Markdown content
// rendered to HTML.
type blogPostView struct {
	models.BlogPost
	HTML string `json:"html"`
}

// BlogDetail returns a single published post by slug with rendered HTML
// and increments its view counter. The counter is best-effort: a failed
// increment never fails the read.
func (p *Public) BlogDetail(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, tier, err := p.blog.PostBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("public blog detail failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Yazı bulunamadı")
		return
	}
	logTier(r, "blog_detail", tier)

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("markdown render failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "Yazı görüntülenemiyor")
		return
	}

	if err := p.blogStore.IncrementViews(slugParam); err != nil {
		slog.Warn("view counter update failed", "error", err, "slug", slugParam)
	}

	respondData(w, http.StatusOK, blogPostView{BlogPost: *post, HTML: html})
}

// BlogLike increments a post's like counter and returns the new count.
func (p *Public) BlogLike(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	likes, err := p.blogStore.IncrementLikes(slugParam)
	if errors.Is(err, store.ErrPostNotFound) {
		respondError(w, http.StatusNotFound, "Yazı bulunamadı")
		return
	}
	if err != nil {
		slog.Error("like failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	respondData(w, http.StatusOK, map[string]int{"likes": likes})
}

// Projects returns the public reference projects (active and completed,
// never archived), newest first.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	projects, tier, err := p.projects.Public(r.Context())
	if err != nil {
		slog.Error("public projects read failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, errServiceDown)
		return
	}
	logTier(r, "projects", tier)
	respondData(w, http.StatusOK, projects)
}

// logTier records which tier served a public read when the database was
// skipped. Database-tier reads stay quiet to keep the log usable.
func logTier(r *http.Request, resource string, tier repo.Tier) {
	if tier != repo.TierDatabase {
		slog.Warn("read served from fallback tier", "resource", resource, "tier", tier, "path", r.URL.Path)
	}
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gozcuweb/internal/models"
	"gozcuweb/internal/repo"
	"gozcuweb/internal/slug"
	"gozcuweb/internal/storage"
	"gozcuweb/internal/store"
)

// Admin groups the admin panel's JSON CRUD handlers. Writes go straight
// to the stores and invalidate the matching public snapshot so the next
// public read refreshes it from PostgreSQL.
type Admin struct {
	blogStore       *store.BlogStore
	projectStore    *store.ProjectStore
	planStore       *store.PlanStore
	contactStore    *store.ContactStore
	newsletterStore *store.NewsletterStore
	userStore       *store.UserStore
	settingStore    *store.SiteSettingStore
	mediaStore      *store.MediaStore
	storageClient   *storage.Client

	blogRepo     *repo.Blog
	projectRepo  *repo.Projects
	planRepo     *repo.Plans
	settingsRepo *repo.Settings
}

// NewAdmin creates the admin handler group. storageClient may be nil
// when object storage is not configured; media endpoints then report
// unavailable.
func NewAdmin(blogStore *store.BlogStore, projectStore *store.ProjectStore, planStore *store.PlanStore, contactStore *store.ContactStore, newsletterStore *store.NewsletterStore, userStore *store.UserStore, settingStore *store.SiteSettingStore, mediaStore *store.MediaStore, storageClient *storage.Client, blogRepo *repo.Blog, projectRepo *repo.Projects, planRepo *repo.Plans, settingsRepo *repo.Settings) *Admin {
	return &Admin{
		blogStore:       blogStore,
		projectStore:    projectStore,
		planStore:       planStore,
		contactStore:    contactStore,
		newsletterStore: newsletterStore,
		userStore:       userStore,
		settingStore:    settingStore,
		mediaStore:      mediaStore,
		storageClient:   storageClient,
		blogRepo:        blogRepo,
		projectRepo:     projectRepo,
		planRepo:        planRepo,
		settingsRepo:    settingsRepo,
	}
}

// parseID reads the {id} URL parameter as a UUID. On failure it answers
// the request and returns false.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz kimlik")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an integer query parameter with a fallback.
func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

// Dashboard returns the admin landing page counters.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	postCount, _ := a.blogStore.Count("")
	draftCount, _ := a.blogStore.Count(models.BlogStatusDraft)
	projectCount, _ := a.projectStore.Count()
	newContacts, _ := a.contactStore.CountByStatus(models.ContactStatusNew)
	subscribers, _ := a.newsletterStore.List()
	var mediaCount int
	if a.mediaStore != nil {
		mediaCount, _ = a.mediaStore.Count()
	}

	respondData(w, http.StatusOK, map[string]int{
		"posts":        postCount,
		"drafts":       draftCount,
		"projects":     projectCount,
		"new_contacts": newContacts,
		"subscribers":  len(subscribers),
		"media":        mediaCount,
	})
}

// --- Blog posts ---

// blogPayload is the admin blog create/update request body. Slug is
// server-owned and absent on purpose.
type blogPayload struct {
	Title         string            `json:"title"`
	Excerpt       *string           `json:"excerpt"`
	Content       string            `json:"content"`
	Category      string            `json:"category"`
	Author        string            `json:"author"`
	FeaturedImage *string           `json:"featured_image"`
	ReadTime      string            `json:"read_time"`
	Status        models.BlogStatus `json:"status"`
}

// estimateReadTime derives a "N dk" label from the word count at roughly
// 200 words per minute.
func estimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return strconv.Itoa(minutes) + " dk"
}

// BlogList returns posts for the admin table, drafts included.
func (a *Admin) BlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := a.blogStore.List(store.BlogFilter{
		Status:   models.BlogStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit", 0),
		Offset:   queryInt(r, "offset", 0),
	})
	if err != nil {
		slog.Error("admin blog list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazılar listelenemedi")
		return
	}
	respondData(w, http.StatusOK, posts)
}

// BlogGet returns one post by ID, any status.
func (a *Admin) BlogGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	post, err := a.blogStore.FindByID(id)
	if err != nil {
		slog.Error("admin blog get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazı yüklenemedi")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "Yazı bulunamadı")
		return
	}
	respondData(w, http.StatusOK, post)
}

// BlogCreate creates a post. The slug is generated from the title with a
// uniqueness suffix; an empty status defaults to draft.
func (a *Admin) BlogCreate(w http.ResponseWriter, r *http.Request) {
	var req blogPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if msg := validateBlogPayload(req.Title, req.Content, req.Category); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if req.Status == "" {
		req.Status = models.BlogStatusDraft
	}
	if req.ReadTime == "" {
		req.ReadTime = estimateReadTime(req.Content)
	}

	created, err := a.blogStore.Create(&models.BlogPost{
		Title:         req.Title,
		Slug:          slug.Unique(req.Title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		ReadTime:      req.ReadTime,
		Status:        req.Status,
	})
	if err != nil {
		slog.Error("admin blog create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazı kaydedilemedi")
		return
	}

	a.blogRepo.Invalidate(r.Context())
	respondData(w, http.StatusCreated, created)
}

// BlogUpdate updates a post. The slug is regenerated only when the title
// actually changed; editing content or status keeps existing links alive.
func (a *Admin) BlogUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req blogPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if msg := validateBlogPayload(req.Title, req.Content, req.Category); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := a.blogStore.FindByID(id)
	if err != nil {
		slog.Error("admin blog lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazı yüklenemedi")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "Yazı bulunamadı")
		return
	}

	postSlug := existing.Slug
	if req.Title != existing.Title {
		postSlug = slug.Unique(req.Title)
	}
	if req.Status == "" {
		req.Status = existing.Status
	}
	if req.ReadTime == "" {
		req.ReadTime = estimateReadTime(req.Content)
	}

	updated := &models.BlogPost{
		ID:            id,
		Title:         req.Title,
		Slug:          postSlug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		ReadTime:      req.ReadTime,
		Status:        req.Status,
	}
	if err := a.blogStore.Update(updated); err != nil {
		slog.Error("admin blog update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazı kaydedilemedi")
		return
	}

	a.blogRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, updated)
}

// BlogPublish makes a post publicly visible.
func (a *Admin) BlogPublish(w http.ResponseWriter, r *http.Request) {
	a.setBlogStatus(w, r, models.BlogStatusPublished)
}

// BlogUnpublish takes a post back to draft.
func (a *Admin) BlogUnpublish(w http.ResponseWriter, r *http.Request) {
	a.setBlogStatus(w, r, models.BlogStatusDraft)
}

func (a *Admin) setBlogStatus(w http.ResponseWriter, r *http.Request, status models.BlogStatus) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.blogStore.SetStatus(id, status); err != nil {
		slog.Error("admin blog status change failed", "error", err, "status", status)
		respondError(w, http.StatusInternalServerError, "Durum güncellenemedi")
		return
	}
	a.blogRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]any{"status": status})
}

// BlogDelete removes a post.
func (a *Admin) BlogDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.blogStore.Delete(id); err != nil {
		slog.Error("admin blog delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Yazı silinemedi")
		return
	}
	a.blogRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]string{"message": "Yazı silindi"})
}

// --- Reference projects ---

// projectPayload is the admin project create/update request body.
type projectPayload struct {
	Company      string               `json:"company"`
	ProjectName  string               `json:"project_name"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	Year         string               `json:"year"`
	Duration     string               `json:"duration"`
	TeamSize     string               `json:"team_size"`
	Technologies []string             `json:"technologies"`
	Challenges   []string             `json:"challenges"`
	Results      []string             `json:"results"`
	Featured     bool                 `json:"featured"`
	Status       models.ProjectStatus `json:"status"`
	LogoData     *string              `json:"logo_data"`
	Logo         string               `json:"logo"`
}

func (p *projectPayload) toModel() *models.Project {
	return &models.Project{
		Company:      p.Company,
		ProjectName:  p.ProjectName,
		Description:  p.Description,
		Category:     p.Category,
		Year:         p.Year,
		Duration:     p.Duration,
		TeamSize:     p.TeamSize,
		Technologies: p.Technologies,
		Challenges:   p.Challenges,
		Results:      p.Results,
		Featured:     p.Featured,
		Status:       p.Status,
		LogoData:     p.LogoData,
		Logo:         p.Logo,
	}
}

// ProjectList returns projects for the admin table, archived included.
func (a *Admin) ProjectList(w http.ResponseWriter, r *http.Request) {
	filter := store.ProjectFilter{
		Status:   models.ProjectStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit", 0),
		Offset:   queryInt(r, "offset", 0),
	}
	if r.URL.Query().Get("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	projects, err := a.projectStore.List(filter)
	if err != nil {
		slog.Error("admin project list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Projeler listelenemedi")
		return
	}
	respondData(w, http.StatusOK, projects)
}

// ProjectGet returns one project by ID.
func (a *Admin) ProjectGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	project, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("admin project get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Proje yüklenemedi")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "Proje bulunamadı")
		return
	}
	respondData(w, http.StatusOK, project)
}

// ProjectCreate creates a reference project.
func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var req projectPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	project := req.toModel()
	if msg := validateProjectPayload(project); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}

	created, err := a.projectStore.Create(project)
	if err != nil {
		slog.Error("admin project create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Proje kaydedilemedi")
		return
	}

	a.projectRepo.Invalidate(r.Context())
	respondData(w, http.StatusCreated, created)
}

// ProjectUpdate updates a reference project.
func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req projectPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	project := req.toModel()
	project.ID = id
	if msg := validateProjectPayload(project); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}

	if err := a.projectStore.Update(project); err != nil {
		slog.Error("admin project update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Proje kaydedilemedi")
		return
	}

	a.projectRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, project)
}

// ProjectToggleFeatured flips the featured flag.
func (a *Admin) ProjectToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	featured, err := a.projectStore.ToggleFeatured(id)
	if err != nil {
		slog.Error("admin project toggle failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Proje güncellenemedi")
		return
	}
	a.projectRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]bool{"featured": featured})
}

// ProjectSetStatus moves a project between active, completed, and archived.
func (a *Admin) ProjectSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status models.ProjectStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	switch req.Status {
	case models.ProjectStatusActive, models.ProjectStatusCompleted, models.ProjectStatusArchived:
	default:
		respondError(w, http.StatusBadRequest, "Geçersiz durum")
		return
	}

	if err := a.projectStore.SetStatus(id, req.Status); err != nil {
		slog.Error("admin project status change failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Durum güncellenemedi")
		return
	}
	a.projectRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]any{"status": req.Status})
}

// ProjectDelete removes a project.
func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.projectStore.Delete(id); err != nil {
		slog.Error("admin project delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Proje silinemedi")
		return
	}
	a.projectRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]string{"message": "Proje silindi"})
}

// --- Plans ---

// planPayload is the admin plan create/update request body.
type planPayload struct {
	Name       string             `json:"name"`
	Price      string             `json:"price"`
	Tagline    string             `json:"tagline"`
	Features   []string           `json:"features"`
	PlanType   models.PlanType    `json:"plan_type"`
	ServerType *models.ServerType `json:"server_type"`
	CTAText    string             `json:"cta_text"`
	Featured   bool               `json:"featured"`
	Status     models.PlanStatus  `json:"status"`
	SortOrder  int                `json:"sort_order"`
}

func (p *planPayload) toModel() *models.Plan {
	return &models.Plan{
		Name:       p.Name,
		Price:      p.Price,
		Tagline:    p.Tagline,
		Features:   p.Features,
		PlanType:   p.PlanType,
		ServerType: p.ServerType,
		CTAText:    p.CTAText,
		Featured:   p.Featured,
		Status:     p.Status,
		SortOrder:  p.SortOrder,
	}
}

// PlanList returns plans for the admin table, inactive included, in
// display order.
func (a *Admin) PlanList(w http.ResponseWriter, r *http.Request) {
	plans, err := a.planStore.List(store.PlanFilter{
		Status:   models.PlanStatus(r.URL.Query().Get("status")),
		PlanType: models.PlanType(r.URL.Query().Get("plan_type")),
	})
	if err != nil {
		slog.Error("admin plan list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Planlar listelenemedi")
		return
	}
	respondData(w, http.StatusOK, plans)
}

// PlanGet returns one plan by ID.
func (a *Admin) PlanGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	plan, err := a.planStore.FindByID(id)
	if err != nil {
		slog.Error("admin plan get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Plan yüklenemedi")
		return
	}
	if plan == nil {
		respondError(w, http.StatusNotFound, "Plan bulunamadı")
		return
	}
	respondData(w, http.StatusOK, plan)
}

// PlanCreate creates a plan.
func (a *Admin) PlanCreate(w http.ResponseWriter, r *http.Request) {
	var req planPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	plan := req.toModel()
	if msg := validatePlanPayload(plan); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if plan.Status == "" {
		plan.Status = models.PlanStatusActive
	}

	created, err := a.planStore.Create(plan)
	if err != nil {
		slog.Error("admin plan create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Plan kaydedilemedi")
		return
	}

	a.planRepo.Invalidate(r.Context())
	respondData(w, http.StatusCreated, created)
}

// PlanUpdate updates a plan.
func (a *Admin) PlanUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req planPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	plan := req.toModel()
	plan.ID = id
	if msg := validatePlanPayload(plan); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if plan.Status == "" {
		plan.Status = models.PlanStatusActive
	}

	if err := a.planStore.Update(plan); err != nil {
		slog.Error("admin plan update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Plan kaydedilemedi")
		return
	}

	a.planRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, plan)
}

// PlanToggleFeatured flips the featured flag.
func (a *Admin) PlanToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	featured, err := a.planStore.ToggleFeatured(id)
	if err != nil {
		slog.Error("admin plan toggle failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Plan güncellenemedi")
		return
	}
	a.planRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]bool{"featured": featured})
}

// PlanReorder assigns new display positions. The request carries plan
// IDs in the desired order.
func (a *Admin) PlanReorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if len(req.IDs) == 0 {
		respondError(w, http.StatusBadRequest, "Sıralama listesi boş")
		return
	}

	if err := a.planStore.Reorder(req.IDs); err != nil {
		slog.Error("admin plan reorder failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Sıralama kaydedilemedi")
		return
	}

	a.planRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]string{"message": "Sıralama güncellendi"})
}

// PlanDelete removes a plan.
func (a *Admin) PlanDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.planStore.Delete(id); err != nil {
		slog.Error("admin plan delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Plan silinemedi")
		return
	}
	a.planRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]string{"message": "Plan silindi"})
}

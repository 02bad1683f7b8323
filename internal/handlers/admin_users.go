// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/middleware"
	"gozcuweb/internal/models"
	"gozcuweb/internal/store"
)

// --- Admin accounts ---

// userPayload is the admin account create/update request body. Password
// is only read on create and on the dedicated password endpoint.
type userPayload struct {
	Name        string            `json:"name"`
	Surname     string            `json:"surname"`
	Email       string            `json:"email"`
	Password    string            `json:"password"`
	Role        models.Role       `json:"role"`
	Status      models.UserStatus `json:"status"`
	Permissions []string          `json:"permissions"`
}

// UserList returns all admin accounts.
func (a *Admin) UserList(w http.ResponseWriter, r *http.Request) {
	users, err := a.userStore.List()
	if err != nil {
		slog.Error("admin user list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Kullanıcılar listelenemedi")
		return
	}
	respondData(w, http.StatusOK, users)
}

// UserCreate creates an admin account.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if msg := validateUserPayload(req.Name, req.Email, req.Role); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Status == "" {
		req.Status = models.UserStatusActive
	}

	created, err := a.userStore.Create(&models.User{
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Role:        req.Role,
		Status:      req.Status,
		Permissions: req.Permissions,
	}, req.Password)
	if err != nil {
		slog.Error("admin user create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		return
	}
	respondData(w, http.StatusCreated, created)
}

// UserUpdate changes an account's profile, role, status, and permissions.
// The password and 2FA state have their own endpoints.
func (a *Admin) UserUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req userPayload
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if msg := validateUserPayload(req.Name, req.Email, req.Role); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Status == "" {
		req.Status = models.UserStatusActive
	}

	user := &models.User{
		ID:          id,
		Name:        req.Name,
		Surname:     req.Surname,
		Email:       req.Email,
		Role:        req.Role,
		Status:      req.Status,
		Permissions: req.Permissions,
	}
	if err := a.userStore.Update(user); err != nil {
		slog.Error("admin user update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Kullanıcı güncellenemedi")
		return
	}
	respondData(w, http.StatusOK, user)
}

// UserSetPassword replaces an account's password.
func (a *Admin) UserSetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if msg := validatePassword(req.Password); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.userStore.SetPassword(id, req.Password); err != nil {
		slog.Error("admin password change failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Şifre güncellenemedi")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Şifre güncellendi"})
}

// UserResetTwoFA clears an account's TOTP enrollment so the user can
// re-register a new device at next login.
func (a *Admin) UserResetTwoFA(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.userStore.ResetTOTP(id); err != nil {
		slog.Error("admin 2fa reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, "İki aşamalı doğrulama sıfırlanamadı")
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	slog.Info("2fa reset", "target", id, "by", sess.UserID)
	respondData(w, http.StatusOK, map[string]string{"message": "İki aşamalı doğrulama sıfırlandı"})
}

// UserDelete removes an admin account. The super admin account is
// immutable and answers 403.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	if sess.UserID == id {
		respondError(w, http.StatusBadRequest, "Kendi hesabınızı silemezsiniz")
		return
	}

	err := a.userStore.Delete(id)
	if errors.Is(err, store.ErrSuperAdminImmutable) {
		respondError(w, http.StatusForbidden, "Süper yönetici hesabı silinemez")
		return
	}
	if err != nil {
		slog.Error("admin user delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Kullanıcı silinemedi")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Kullanıcı silindi"})
}

// --- Contact messages ---

// ContactList returns contact form submissions, optionally by status.
func (a *Admin) ContactList(w http.ResponseWriter, r *http.Request) {
	messages, err := a.contactStore.List(store.ContactFilter{
		Status: models.ContactStatus(r.URL.Query().Get("status")),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		slog.Error("admin contact list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Mesajlar listelenemedi")
		return
	}
	respondData(w, http.StatusOK, messages)
}

// ContactGet returns one submission by ID.
func (a *Admin) ContactGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	message, err := a.contactStore.FindByID(id)
	if err != nil {
		slog.Error("admin contact get failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Mesaj yüklenemedi")
		return
	}
	if message == nil {
		respondError(w, http.StatusNotFound, "Mesaj bulunamadı")
		return
	}
	respondData(w, http.StatusOK, message)
}

// ContactSetStatus moves a submission through its handling states. Any
// transition is allowed.
func (a *Admin) ContactSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status models.ContactStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	switch req.Status {
	case models.ContactStatusNew, models.ContactStatusRead,
		models.ContactStatusReplied, models.ContactStatusClosed:
	default:
		respondError(w, http.StatusBadRequest, "Geçersiz durum")
		return
	}

	if err := a.contactStore.UpdateStatus(id, req.Status); err != nil {
		slog.Error("admin contact status change failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Durum güncellenemedi")
		return
	}
	respondData(w, http.StatusOK, map[string]any{"status": req.Status})
}

// ContactDelete removes a submission.
func (a *Admin) ContactDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := a.contactStore.Delete(id); err != nil {
		slog.Error("admin contact delete failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Mesaj silinemedi")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Mesaj silindi"})
}

// --- Newsletter subscribers ---

// NewsletterList returns all subscribers, newest first.
func (a *Admin) NewsletterList(w http.ResponseWriter, r *http.Request) {
	subscribers, err := a.newsletterStore.List()
	if err != nil {
		slog.Error("admin newsletter list failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Aboneler listelenemedi")
		return
	}
	respondData(w, http.StatusOK, subscribers)
}

// NewsletterUnsubscribe marks an address as unsubscribed.
func (a *Admin) NewsletterUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if result := antispam.ValidateEmail(req.Email); !result.IsValid {
		respondError(w, http.StatusBadRequest, result.Message)
		return
	}

	if err := a.newsletterStore.Unsubscribe(req.Email); err != nil {
		slog.Error("admin unsubscribe failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Abonelik iptali kaydedilemedi")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Abonelik iptal edildi"})
}

// --- Site settings ---

// SettingsGet returns the full settings map for the admin form.
func (a *Admin) SettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settingStore.All()
	if err != nil {
		slog.Error("admin settings read failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Ayarlar yüklenemedi")
		return
	}
	respondData(w, http.StatusOK, settings)
}

// SettingsUpdate upserts a batch of settings and refreshes the public
// snapshot.
func (a *Admin) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}
	if len(req) == 0 {
		respondError(w, http.StatusBadRequest, "Güncellenecek ayar yok")
		return
	}
	if msg := validateSettings(req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := a.settingStore.SetMany(req); err != nil {
		slog.Error("admin settings update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Ayarlar kaydedilemedi")
		return
	}

	a.settingsRepo.Invalidate(r.Context())
	respondData(w, http.StatusOK, map[string]string{"message": "Ayarlar güncellendi"})
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"gozcuweb/internal/middleware"
	"gozcuweb/internal/session"
	"gozcuweb/internal/store"
)

// totpIssuer labels the account in authenticator apps.
const totpIssuer = "Gözcü Yazılım"

// Auth groups the admin authentication endpoints: login, TOTP two-factor
// setup and verification, logout, and the current-session probe.
type Auth struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates the auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{sessions: sessions, userStore: userStore}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionView is the session payload exposed to the admin SPA.
type sessionView struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Requires2FA bool   `json:"requires_2fa"`
	Needs2FASet bool   `json:"needs_2fa_setup"`
}

// Login checks credentials and opens a session. Accounts with TOTP
// enabled get a half-open session (TwoFADone false) and must verify a
// code before the admin middleware lets them through. Invalid email and
// invalid password answer identically.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	user, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "E-posta veya şifre hatalı")
		return
	}
	if !user.IsActive() {
		respondError(w, http.StatusForbidden, "Hesabınız devre dışı bırakılmış")
		return
	}

	// Two-factor is optional per account. Without it the session is
	// complete at login; with it the session stays half-open until a
	// valid code arrives.
	data := &session.Data{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		TwoFADone: !user.TOTPEnabled,
	}
	if _, err := a.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	if data.TwoFADone {
		if err := a.userStore.TouchLastLogin(user.ID); err != nil {
			slog.Warn("last login update failed", "error", err, "user", user.ID)
		}
	}

	respondData(w, http.StatusOK, sessionView{
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		Requires2FA: user.TOTPEnabled,
	})
}

// TwoFASetup generates a fresh TOTP secret for the logged-in user and
// returns it with a QR code PNG (base64) for authenticator enrollment.
// The secret only becomes binding after the first successful Verify.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	respondData(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qr_png": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify validates a TOTP code and completes the session. On the
// first successful verification it also flips the account to
// TOTP-enabled, finishing enrollment.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, http.StatusBadRequest, "İki aşamalı doğrulama kurulumu yapılmamış")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "Doğrulama kodu geçersiz")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
		return
	}

	if err := a.userStore.TouchLastLogin(user.ID); err != nil {
		slog.Warn("last login update failed", "error", err, "user", user.ID)
	}

	respondData(w, http.StatusOK, sessionView{
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}

// Me returns the current session so the SPA can restore its auth state
// after a reload.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	respondData(w, http.StatusOK, sessionView{
		Email:       sess.Email,
		Name:        sess.Name,
		Role:        string(sess.Role),
		Requires2FA: !sess.TwoFADone,
	})
}

// Logout destroys the session and clears the cookie.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	respondData(w, http.StatusOK, map[string]string{"message": "Çıkış yapıldı"})
}

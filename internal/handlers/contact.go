// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/middleware"
	"gozcuweb/internal/models"
	"gozcuweb/internal/phone"
)

// contactRequest is the contact form payload. Website is the hidden
// honeypot field; humans never fill it.
type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	Website     string `json:"website"`
}

// newsletterRequest is the newsletter signup payload.
type newsletterRequest struct {
	Email   string `json:"email"`
	Website string `json:"website"`
}

// ContactSubmit accepts a contact form submission. The checks run in a
// fixed order and the first failing stage answers the request: rate
// limit, honeypot, field validation, spam heuristic. Only a submission
// passing all four is sanitized and stored.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	ctx := r.Context()
	client := middleware.ClientIP(r)

	decision := p.limiter.Allow(ctx, "contact", client, antispam.ContactRule)
	if !decision.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfter))
		respondError(w, http.StatusTooManyRequests,
			fmt.Sprintf("Çok fazla deneme yaptınız. Lütfen %d saniye sonra tekrar deneyin.", decision.RetryAfter))
		return
	}

	if result := antispam.ValidateHoneypot(req.Website); !result.IsValid {
		slog.Warn("honeypot triggered", "client", client)
		respondError(w, http.StatusBadRequest, result.Message)
		return
	}

	form := antispam.ContactForm{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	}
	if errs := antispam.ValidateContactForm(form); len(errs) > 0 {
		respondFieldErrors(w, http.StatusBadRequest, "Lütfen formdaki hataları düzeltin", errs)
		return
	}

	if antispam.IsSpam(form.Message) {
		slog.Warn("spam heuristic rejected message", "client", client)
		respondError(w, http.StatusBadRequest, "Mesajınız spam olarak algılandı")
		return
	}

	form = antispam.SanitizeForm(form)

	// Turkish numbers are stored in +90 canonical form; anything else
	// (foreign, partial, empty) is kept as typed.
	storedPhone := form.Phone
	if canon := phone.Canonical(form.Phone); canon != "" {
		storedPhone = canon
	}

	created, err := p.contactStore.Create(&models.ContactMessage{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       storedPhone,
		ProjectType: form.ProjectType,
		Message:     form.Message,
		Status:      models.ContactStatusNew,
		Source:      "website",
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		slog.Error("contact message insert failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Mesajınız kaydedilemedi. Lütfen tekrar deneyin.")
		return
	}

	slog.Info("contact message received", "id", created.ID, "project_type", created.ProjectType)
	respondData(w, http.StatusCreated, map[string]any{
		"id":      created.ID,
		"message": "Mesajınız alındı. En kısa sürede size dönüş yapacağız.",
	})
}

// NewsletterSubscribe records a newsletter signup. Same rate-limit and
// honeypot protection as the contact form, with only the email validated.
// Subscribing an existing address is idempotent; a previously
// unsubscribed address returns to pending.
func (p *Public) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek")
		return
	}

	ctx := r.Context()
	client := middleware.ClientIP(r)

	decision := p.limiter.Allow(ctx, "newsletter", client, antispam.NewsletterRule)
	if !decision.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfter))
		respondError(w, http.StatusTooManyRequests,
			fmt.Sprintf("Çok fazla deneme yaptınız. Lütfen %d saniye sonra tekrar deneyin.", decision.RetryAfter))
		return
	}

	if result := antispam.ValidateHoneypot(req.Website); !result.IsValid {
		slog.Warn("honeypot triggered", "client", client)
		respondError(w, http.StatusBadRequest, result.Message)
		return
	}

	if result := antispam.ValidateEmail(req.Email); !result.IsValid {
		respondFieldErrors(w, http.StatusBadRequest, "Lütfen formdaki hataları düzeltin",
			map[string]string{"email": result.Message})
		return
	}

	email := antispam.Sanitize(req.Email)
	sub, err := p.newsletterStore.Subscribe(email, "website")
	if err != nil {
		slog.Error("newsletter subscribe failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Kayıt başarısız oldu. Lütfen tekrar deneyin.")
		return
	}

	respondData(w, http.StatusCreated, map[string]any{
		"status":  sub.Status,
		"message": "Bültenimize kaydoldunuz. Teşekkürler!",
	})
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestContactSubmitEndToEnd(t *testing.T) {
	env := newPublicEnv(t)
	defer cleanContacts(t, env.DB, "ayse@example.com")

	req := postJSON("/api/contact", `{
		"name": "Ayşe Yılmaz",
		"email": "ayse@example.com",
		"phone": "0532 123 45 67",
		"projectType": "Web",
		"message": "Kurumsal web sitemizi yenilemek istiyoruz."
	}`)
	req.Header.Set("User-Agent", "test-agent/1.0")
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if envlp := decodeEnvelope(t, rec); !envlp.Success {
		t.Errorf("expected success envelope, got error %q", envlp.Error)
	}

	var status, source, userAgent, storedPhone string
	err := env.DB.QueryRow(`
		SELECT status, source, user_agent, phone FROM contact_messages
		WHERE email = 'ayse@example.com'`).Scan(&status, &source, &userAgent, &storedPhone)
	if err != nil {
		t.Fatalf("stored row: %v", err)
	}
	if status != "new" {
		t.Errorf("status: got %q, want new", status)
	}
	if source != "website" {
		t.Errorf("source: got %q, want website", source)
	}
	if userAgent != "test-agent/1.0" {
		t.Errorf("user agent: got %q", userAgent)
	}
	if storedPhone != "+905321234567" {
		t.Errorf("phone: got %q, want canonical +905321234567", storedPhone)
	}
}

func TestContactSubmitForeignPhoneKeptAsTyped(t *testing.T) {
	env := newPublicEnv(t)
	defer cleanContacts(t, env.DB, "yurtdisi@example.com")

	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, postJSON("/api/contact", `{
		"name": "John Smith",
		"email": "yurtdisi@example.com",
		"phone": "+44 20 7946 0958",
		"projectType": "Danışmanlık",
		"message": "Yazılım danışmanlığı hakkında bilgi almak istiyorum."
	}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var storedPhone string
	if err := env.DB.QueryRow(`
		SELECT phone FROM contact_messages WHERE email = 'yurtdisi@example.com'`).
		Scan(&storedPhone); err != nil {
		t.Fatalf("stored row: %v", err)
	}
	if storedPhone != "+44 20 7946 0958" {
		t.Errorf("phone: got %q, want the raw value", storedPhone)
	}
}

func TestContactSubmitHoneypot(t *testing.T) {
	env := newPublicEnv(t)

	req := postJSON("/api/contact", `{
		"name": "Ayşe Yılmaz",
		"email": "bot@example.com",
		"projectType": "Web",
		"message": "Kurumsal web sitemizi yenilemek istiyoruz.",
		"website": "http://spam.example"
	}`)
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if envlp := decodeEnvelope(t, rec); envlp.Error != "Bot tespit edildi" {
		t.Errorf("error: got %q", envlp.Error)
	}

	var count int
	env.DB.QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE email = 'bot@example.com'`).Scan(&count)
	if count != 0 {
		t.Error("honeypot submission must not be stored")
	}
}

func TestContactSubmitFieldErrors(t *testing.T) {
	env := newPublicEnv(t)

	req := postJSON("/api/contact", `{
		"name": "A",
		"email": "not-an-email",
		"projectType": "Bilinmeyen",
		"message": "kısa"
	}`)
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	envlp := decodeEnvelope(t, rec)
	if envlp.Success {
		t.Fatal("expected failure envelope")
	}
	if envlp.Errors["email"] != "Geçerli bir e-posta adresi giriniz" {
		t.Errorf("email error: got %q", envlp.Errors["email"])
	}
	for _, field := range []string{"name", "projectType", "message"} {
		if envlp.Errors[field] == "" {
			t.Errorf("expected an error for field %s", field)
		}
	}
}

func TestContactSubmitSpamRejected(t *testing.T) {
	env := newPublicEnv(t)

	req := postJSON("/api/contact", `{
		"name": "Ayşe Yılmaz",
		"email": "spam@example.com",
		"projectType": "Web",
		"message": "Detaylar için https://spam.example adresine bakın lütfen."
	}`)
	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if envlp := decodeEnvelope(t, rec); envlp.Error != "Mesajınız spam olarak algılandı" {
		t.Errorf("error: got %q", envlp.Error)
	}
}

func TestContactSubmitRateLimited(t *testing.T) {
	env := newPublicEnv(t)
	defer cleanContacts(t, env.DB, "hizli@example.com")

	body := `{
		"name": "Ayşe Yılmaz",
		"email": "hizli@example.com",
		"projectType": "Web",
		"message": "Kurumsal web sitemizi yenilemek istiyoruz."
	}`

	// Contact allows 3 per minute per client; the 4th must be rejected.
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		env.Public.ContactSubmit(rec, postJSON("/api/contact", body))
		if rec.Code != http.StatusCreated {
			t.Fatalf("attempt %d: got %d, body %s", i+1, rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	env.Public.ContactSubmit(rec, postJSON("/api/contact", body))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("4th attempt: got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	env := newPublicEnv(t)
	t.Cleanup(func() {
		env.DB.Exec(`DELETE FROM newsletter_subscribers WHERE email = 'bulten@example.com'`)
	})

	rec := httptest.NewRecorder()
	env.Public.NewsletterSubscribe(rec, postJSON("/api/newsletter/subscribe",
		`{"email": "bulten@example.com"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var status string
	if err := env.DB.QueryRow(`
		SELECT status FROM newsletter_subscribers WHERE email = 'bulten@example.com'`).
		Scan(&status); err != nil {
		t.Fatalf("stored row: %v", err)
	}
	if status != "pending" {
		t.Errorf("status: got %q, want pending", status)
	}
}

func TestNewsletterSubscribeInvalidEmail(t *testing.T) {
	env := newPublicEnv(t)

	rec := httptest.NewRecorder()
	env.Public.NewsletterSubscribe(rec, postJSON("/api/newsletter/subscribe",
		`{"email": "bozuk"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	if envlp := decodeEnvelope(t, rec); envlp.Errors["email"] != "Geçerli bir e-posta adresi giriniz" {
		t.Errorf("email error: got %q", envlp.Errors["email"])
	}
}

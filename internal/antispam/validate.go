// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package antispam

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of a single field validation. Message is empty
// when the field is valid; it is a Turkish user-facing message otherwise.
type Result struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// valid is the Result for a passing field.
var valid = Result{IsValid: true}

// ProjectTypes is the fixed set of selectable project types on the
// contact form. Must match the frontend dropdown exactly.
var ProjectTypes = []string{
	"Web",
	"Bulut",
	"Yazılım",
	"E-Ticaret",
	"Danışmanlık",
	"Diğer",
}

var (
	// namePattern allows letters (including Turkish characters) and spaces.
	namePattern = regexp.MustCompile(`^[a-zA-ZçÇğĞıİöÖşŞüÜ\s]+$`)

	// emailPattern checks the basic local@domain.tld shape. Deliverability
	// is not verified; that is the mail server's job.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateName accepts 2–50 characters of letters (incl. Turkish) and spaces.
func ValidateName(name string) Result {
	n := utf8.RuneCountInString(name)
	if n < 2 || n > 50 || !namePattern.MatchString(name) {
		return Result{Message: "Geçerli bir isim giriniz (2-50 karakter, sadece harf)"}
	}
	return valid
}

// ValidateEmail accepts any string shaped like local@domain.tld.
func ValidateEmail(email string) Result {
	if !emailPattern.MatchString(email) {
		return Result{Message: "Geçerli bir e-posta adresi giriniz"}
	}
	return valid
}

// ValidatePhone accepts every input, including empty. The permissive
// behavior is deliberate: callers format the number for display but the
// form never rejects a submission over the phone field.
func ValidatePhone(string) Result {
	return valid
}

// ValidateProjectType accepts only values from the fixed ProjectTypes set.
func ValidateProjectType(projectType string) Result {
	for _, t := range ProjectTypes {
		if projectType == t {
			return valid
		}
	}
	return Result{Message: "Lütfen geçerli bir proje türü seçiniz"}
}

// ValidateMessage accepts messages of 10–1000 characters.
func ValidateMessage(message string) Result {
	n := utf8.RuneCountInString(message)
	if n < 10 {
		return Result{Message: "Mesajınız en az 10 karakter olmalıdır"}
	}
	if n > 1000 {
		return Result{Message: "Mesajınız en fazla 1000 karakter olabilir"}
	}
	return valid
}

// ValidateHoneypot is valid iff the hidden field is empty or all
// whitespace. Any other value means an automated submission.
func ValidateHoneypot(value string) Result {
	if strings.TrimSpace(value) != "" {
		return Result{Message: "Bot tespit edildi"}
	}
	return valid
}

// ContactForm carries the raw contact form fields for validation.
type ContactForm struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Message     string
}

// ValidateContactForm runs every field validator and returns a map of
// field name → Turkish error message. An empty map means the form passed.
func ValidateContactForm(f ContactForm) map[string]string {
	errs := make(map[string]string)
	if r := ValidateName(f.Name); !r.IsValid {
		errs["name"] = r.Message
	}
	if r := ValidateEmail(f.Email); !r.IsValid {
		errs["email"] = r.Message
	}
	if r := ValidatePhone(f.Phone); !r.IsValid {
		errs["phone"] = r.Message
	}
	if r := ValidateProjectType(f.ProjectType); !r.IsValid {
		errs["projectType"] = r.Message
	}
	if r := ValidateMessage(f.Message); !r.IsValid {
		errs["message"] = r.Message
	}
	return errs
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"gozcuweb/internal/antispam"
	"gozcuweb/internal/models"
)

// Field limits for admin-entered content.
const (
	maxTitleLen    = 200
	maxContentLen  = 100_000
	maxNameLen     = 100
	maxFeatures    = 20
	maxFeatureLen  = 200
	maxSettingLen  = 2_000
	maxListItems   = 20
	maxListItemLen = 500
)

// validateBlogPayload checks a blog create/update payload and returns the
// first error found, or "".
func validateBlogPayload(title, content, category string) string {
	if strings.TrimSpace(title) == "" {
		return "Başlık zorunludur"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Başlık çok uzun (en fazla 200 karakter)"
	}
	if strings.TrimSpace(content) == "" {
		return "İçerik zorunludur"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "İçerik çok uzun"
	}
	if strings.TrimSpace(category) == "" {
		return "Kategori zorunludur"
	}
	return ""
}

// validateProjectPayload checks a reference project payload.
func validateProjectPayload(p *models.Project) string {
	if strings.TrimSpace(p.Company) == "" {
		return "Firma adı zorunludur"
	}
	if strings.TrimSpace(p.ProjectName) == "" {
		return "Proje adı zorunludur"
	}
	if utf8.RuneCountInString(p.ProjectName) > maxTitleLen {
		return "Proje adı çok uzun (en fazla 200 karakter)"
	}
	for _, list := range [][]string{p.Technologies, p.Challenges, p.Results} {
		if len(list) > maxListItems {
			return "Liste çok uzun (en fazla 20 madde)"
		}
		for _, item := range list {
			if utf8.RuneCountInString(item) > maxListItemLen {
				return "Liste maddesi çok uzun (en fazla 500 karakter)"
			}
		}
	}
	return ""
}

// validatePlanPayload checks a plan payload. Server type is only legal on
// cloud plans; the database enforces the same rule with a CHECK constraint.
func validatePlanPayload(p *models.Plan) string {
	if strings.TrimSpace(p.Name) == "" {
		return "Plan adı zorunludur"
	}
	if strings.TrimSpace(p.Price) == "" {
		return "Fiyat zorunludur"
	}
	switch p.PlanType {
	case models.PlanTypeBulut, models.PlanTypeWeb, models.PlanTypeYazilim:
	default:
		return "Geçersiz plan tipi"
	}
	if p.ServerType != nil {
		if p.PlanType != models.PlanTypeBulut {
			return "Sunucu tipi yalnızca bulut planları için geçerlidir"
		}
		switch *p.ServerType {
		case models.ServerTypeLinux, models.ServerTypeWindows:
		default:
			return "Geçersiz sunucu tipi"
		}
	}
	if len(p.Features) > maxFeatures {
		return "Özellik listesi çok uzun (en fazla 20 madde)"
	}
	for _, f := range p.Features {
		if utf8.RuneCountInString(f) > maxFeatureLen {
			return "Özellik metni çok uzun (en fazla 200 karakter)"
		}
	}
	return ""
}

// validateUserPayload checks an admin account payload. The email reuses
// the public form's validator; roles come from the fixed set.
func validateUserPayload(name, email string, role models.Role) string {
	if strings.TrimSpace(name) == "" {
		return "İsim zorunludur"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "İsim çok uzun (en fazla 100 karakter)"
	}
	if result := antispam.ValidateEmail(email); !result.IsValid {
		return result.Message
	}
	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin, models.RoleEditor, models.RoleModerator:
	default:
		return "Geçersiz rol"
	}
	return ""
}

// validatePassword enforces the minimum password length for admin accounts.
func validatePassword(password string) string {
	if utf8.RuneCountInString(password) < 8 {
		return "Şifre en az 8 karakter olmalıdır"
	}
	return ""
}

// validateSettings checks a settings batch: no empty keys, bounded values.
func validateSettings(settings map[string]string) string {
	for key, value := range settings {
		if strings.TrimSpace(key) == "" {
			return "Boş ayar anahtarı"
		}
		if utf8.RuneCountInString(value) > maxSettingLen {
			return "Ayar değeri çok uzun (en fazla 2000 karakter)"
		}
	}
	return ""
}

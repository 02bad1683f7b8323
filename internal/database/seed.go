// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates an empty database with the data the site needs on
// first boot: the super admin account, the default service plans, and
// the baseline site settings. Each group is seeded independently and
// only when its table is empty, so Seed is safe to call on every start.
func Seed(db *sql.DB) error {
	if err := seedSuperAdmin(db); err != nil {
		return err
	}
	if err := seedPlans(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	return nil
}

// seedSuperAdmin creates the founding admin account. 2FA is not enabled;
// they are prompted to set it up on first login.
func seedSuperAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, surname, email, password_hash, role, status, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, '[]')`,
		"Gözcü", "Admin", "admin@gozcu.local", string(hash), "super_admin", "active",
	)
	if err != nil {
		return fmt.Errorf("seed insert super admin: %w", err)
	}

	slog.Info("database seeded with super admin account",
		"email", "admin@gozcu.local",
		"password", "admin",
	)
	return nil
}

// seedPlans inserts the default service plans shown on the pricing pages.
func seedPlans(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&count); err != nil {
		return fmt.Errorf("seed check plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	plans := []struct {
		name, price, tagline, features, planType string
		serverType                               *string
		ctaText                                  string
		featured                                 bool
		sortOrder                                int
	}{
		{
			name: "Başlangıç", price: "₺499/ay", tagline: "Küçük ekipler için",
			features: `["2 vCPU", "4 GB RAM", "80 GB NVMe SSD", "Haftalık yedekleme"]`,
			planType: "bulut", serverType: ptr("linux"),
			ctaText: "Hemen Başla", sortOrder: 0,
		},
		{
			name: "Profesyonel", price: "₺999/ay", tagline: "Büyüyen işler için",
			features: `["4 vCPU", "8 GB RAM", "160 GB NVMe SSD", "Günlük yedekleme", "Öncelikli destek"]`,
			planType: "bulut", serverType: ptr("linux"),
			ctaText: "Hemen Başla", featured: true, sortOrder: 1,
		},
		{
			name: "Windows Sunucu", price: "₺1.499/ay", tagline: "Windows tabanlı uygulamalar için",
			features: `["4 vCPU", "16 GB RAM", "200 GB NVMe SSD", "RDP erişimi"]`,
			planType: "bulut", serverType: ptr("windows"),
			ctaText: "Teklif Al", sortOrder: 2,
		},
		{
			name: "Kurumsal Web Sitesi", price: "₺24.900", tagline: "Kurumsal kimliğinize uygun site",
			features: `["Özgün tasarım", "Yönetim paneli", "SEO temel kurulum", "1 yıl barındırma"]`,
			planType: "web",
			ctaText:  "Teklif Al", sortOrder: 3,
		},
		{
			name: "Özel Yazılım", price: "Projeye özel", tagline: "İhtiyacınıza göre geliştirme",
			features: `["Analiz ve tasarım", "Çevik geliştirme", "Devreye alma", "Bakım anlaşması"]`,
			planType: "yazilim",
			ctaText:  "Görüşme Planla", sortOrder: 4,
		},
	}

	for _, p := range plans {
		_, err := db.Exec(`
			INSERT INTO plans (name, price, tagline, features, plan_type,
			                   server_type, cta_text, featured, status, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active', $9)`,
			p.name, p.price, p.tagline, p.features, p.planType,
			p.serverType, p.ctaText, p.featured, p.sortOrder,
		)
		if err != nil {
			return fmt.Errorf("seed insert plan %q: %w", p.name, err)
		}
	}

	slog.Info("database seeded with default plans", "count", len(plans))
	return nil
}

// seedSettings inserts the baseline site configuration keys.
func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&count); err != nil {
		return fmt.Errorf("seed check settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := map[string]string{
		"general.site_name":   "Gözcü Yazılım",
		"general.site_url":    "https://www.gozcu.com.tr",
		"general.description": "Kurumsal yazılım, bulut ve web çözümleri",
		"contact.email":       "iletisim@gozcu.com.tr",
		"contact.phone":       "+902121234567",
		"contact.address":     "Maslak, İstanbul",
		"social.linkedin":     "",
		"social.twitter":      "",
		"social.instagram":    "",
		"seo.meta_title":      "Gözcü Yazılım | Kurumsal Teknoloji Çözümleri",
		"seo.meta_keywords":   "yazılım, bulut, web tasarım",
		"analytics.ga_id":     "",
	}

	for k, v := range defaults {
		if _, err := db.Exec(
			`INSERT INTO site_settings (key, value) VALUES ($1, $2)`, k, v); err != nil {
			return fmt.Errorf("seed insert setting %q: %w", k, err)
		}
	}

	slog.Info("database seeded with default settings", "count", len(defaults))
	return nil
}

func ptr(s string) *string { return &s }

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle state of a reference project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project represents a customer reference project shown on the site.
// Technologies, challenges and results are ordered lists stored as JSONB.
// A project carries either an inline-encoded logo image (LogoData) or an
// emoji fallback (Logo).
type Project struct {
	ID           uuid.UUID     `json:"id"`
	Company      string        `json:"company"`
	ProjectName  string        `json:"project_name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Year         string        `json:"year"`
	Duration     string        `json:"duration"`
	TeamSize     string        `json:"team_size"`
	Technologies []string      `json:"technologies"`
	Challenges   []string      `json:"challenges"`
	Results      []string      `json:"results"`
	Featured     bool          `json:"featured"`
	Status       ProjectStatus `json:"status"`
	LogoData     *string       `json:"logo_data,omitempty"`
	Logo         string        `json:"logo"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanType categorizes a service plan.
type PlanType string

const (
	PlanTypeBulut   PlanType = "bulut"   // cloud hosting plans
	PlanTypeWeb     PlanType = "web"     // website packages
	PlanTypeYazilim PlanType = "yazilim" // custom software
)

// ServerType is the operating system of a cloud plan's server.
// Only meaningful when the plan type is "bulut".
type ServerType string

const (
	ServerTypeLinux   ServerType = "linux"
	ServerTypeWindows ServerType = "windows"
)

// PlanStatus represents whether a plan is offered on the public site.
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// Plan represents a priced service offering. Price is a display string
// ("₺1.499/ay"), not a numeric value; pricing pages show formatted text.
// Display order is controlled by SortOrder ascending, independent of
// creation time.
type Plan struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Price      string      `json:"price"`
	Tagline    string      `json:"tagline"`
	Features   []string    `json:"features"`
	PlanType   PlanType    `json:"plan_type"`
	ServerType *ServerType `json:"server_type,omitempty"`
	CTAText    string      `json:"cta_text"`
	Featured   bool        `json:"featured"`
	Status     PlanStatus  `json:"status"`
	SortOrder  int         `json:"sort_order"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks the handling state of a contact form submission.
// Transitions are not enforced; an admin may set any status at any time.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
	ContactStatusClosed  ContactStatus = "closed"
)

// ContactMessage is a single contact form submission from a public visitor.
// Created exactly once; only the status is mutated afterwards.
type ContactMessage struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ProjectType string        `json:"project_type"`
	Message     string        `json:"message"`
	Status      ContactStatus `json:"status"`
	Source      string        `json:"source"`
	UserAgent   string        `json:"user_agent"`
	CreatedAt   time.Time     `json:"created_at"`
}

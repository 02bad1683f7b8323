// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogStatus represents the publishing state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogPost represents an article on the company blog. The slug is derived
// from the title with a uniqueness suffix and is regenerated only when the
// title changes.
type BlogPost struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Author        string     `json:"author"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	ReadTime      string     `json:"read_time"`
	Status        BlogStatus `json:"status"`
	Views         int        `json:"views"`
	Likes         int        `json:"likes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is visible on the public site.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}

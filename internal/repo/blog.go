// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package repo

import (
	"context"
	"encoding/json"

	"gozcuweb/internal/cache"
	"gozcuweb/internal/models"
	"gozcuweb/internal/store"
)

// blogPublishedKey is the snapshot key for the full published post list.
const blogPublishedKey = "blog:published"

// BlogLister is the store surface the blog repository needs.
type BlogLister interface {
	List(f store.BlogFilter) ([]models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
}

// Blog serves public blog reads with snapshot fallback.
type Blog struct {
	store BlogLister
	snaps *cache.Snapshots
}

// NewBlog returns a blog repository over the given store and snapshot cache.
func NewBlog(s BlogLister, snaps *cache.Snapshots) *Blog {
	return &Blog{store: s, snaps: snaps}
}

// Published returns all published posts, newest first. Category and
// pagination filtering happen in the handler so the snapshot always
// holds the complete list.
func (b *Blog) Published(ctx context.Context) ([]models.BlogPost, Tier, error) {
	return fetch(ctx, b.snaps, blogPublishedKey, func() ([]models.BlogPost, error) {
		return b.store.List(store.BlogFilter{Status: models.BlogStatusPublished})
	})
}

// PostBySlug returns a single published post. On database failure the
// published-list snapshot is searched instead.
func (b *Blog) PostBySlug(ctx context.Context, slug string) (*models.BlogPost, Tier, error) {
	post, err := b.store.FindBySlug(slug)
	if err == nil {
		return post, TierDatabase, nil
	}

	data, ok := b.snaps.Get(ctx, blogPublishedKey)
	if !ok {
		return nil, "", err
	}
	var posts []models.BlogPost
	if uerr := json.Unmarshal(data, &posts); uerr != nil {
		return nil, "", err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], TierSnapshot, nil
		}
	}
	return nil, TierSnapshot, nil
}

// Invalidate drops the published snapshot. Called after admin writes.
func (b *Blog) Invalidate(ctx context.Context) {
	b.snaps.Invalidate(ctx, blogPublishedKey)
}

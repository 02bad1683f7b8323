// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package repo

import (
	"context"

	"gozcuweb/internal/cache"
	"gozcuweb/internal/models"
	"gozcuweb/internal/store"
)

// projectsPublicKey is the snapshot key for the public project list.
const projectsPublicKey = "projects:public"

// ProjectLister is the store surface the project repository needs.
type ProjectLister interface {
	List(f store.ProjectFilter) ([]models.Project, error)
}

// Projects serves public reference project reads with snapshot fallback.
type Projects struct {
	store ProjectLister
	snaps *cache.Snapshots
}

// NewProjects returns a project repository over the given store and snapshot cache.
func NewProjects(s ProjectLister, snaps *cache.Snapshots) *Projects {
	return &Projects{store: s, snaps: snaps}
}

// Public returns projects visible on the references page. Archived
// projects are excluded; active and completed both show.
func (p *Projects) Public(ctx context.Context) ([]models.Project, Tier, error) {
	return fetch(ctx, p.snaps, projectsPublicKey, func() ([]models.Project, error) {
		all, err := p.store.List(store.ProjectFilter{})
		if err != nil {
			return nil, err
		}
		visible := make([]models.Project, 0, len(all))
		for _, pr := range all {
			if pr.Status != models.ProjectStatusArchived {
				visible = append(visible, pr)
			}
		}
		return visible, nil
	})
}

// Invalidate drops the public project snapshot. Called after admin writes.
func (p *Projects) Invalidate(ctx context.Context) {
	p.snaps.Invalidate(ctx, projectsPublicKey)
}

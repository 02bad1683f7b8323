// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package repo

import (
	"context"

	"gozcuweb/internal/cache"
	"gozcuweb/internal/models"
	"gozcuweb/internal/store"
)

// plansActiveKey is the snapshot key for the active plan list.
const plansActiveKey = "plans:active"

// PlanLister is the store surface the plan repository needs.
type PlanLister interface {
	List(f store.PlanFilter) ([]models.Plan, error)
}

// Plans serves public service plan reads with snapshot fallback.
type Plans struct {
	store PlanLister
	snaps *cache.Snapshots
}

// NewPlans returns a plan repository over the given store and snapshot cache.
func NewPlans(s PlanLister, snaps *cache.Snapshots) *Plans {
	return &Plans{store: s, snaps: snaps}
}

// Active returns all active plans in display order. The snapshot holds
// the complete active list; per-request type filtering is applied by
// the caller via FilterPlans.
func (p *Plans) Active(ctx context.Context) ([]models.Plan, Tier, error) {
	return fetch(ctx, p.snaps, plansActiveKey, func() ([]models.Plan, error) {
		return p.store.List(store.PlanFilter{Status: models.PlanStatusActive})
	})
}

// Invalidate drops the active plan snapshot. Called after admin writes.
func (p *Plans) Invalidate(ctx context.Context) {
	p.snaps.Invalidate(ctx, plansActiveKey)
}

// FilterPlans narrows a plan list by type and server OS. The server
// type only discriminates cloud plans; for any other plan type it is
// ignored, matching the database-side filter.
func FilterPlans(plans []models.Plan, planType models.PlanType, serverType models.ServerType) []models.Plan {
	out := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if planType != "" && p.PlanType != planType {
			continue
		}
		if serverType != "" && planType == models.PlanTypeBulut {
			if p.ServerType == nil || *p.ServerType != serverType {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

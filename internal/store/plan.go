// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

// PlanFilter narrows plan List queries. ServerType is only meaningful
// together with PlanType "bulut"; it is ignored otherwise.
type PlanFilter struct {
	Status     models.PlanStatus
	PlanType   models.PlanType
	ServerType models.ServerType
	Featured   *bool
}

// PlanStore handles all service plan database operations.
type PlanStore struct {
	db *sql.DB
}

// NewPlanStore creates a new PlanStore with the given database connection.
func NewPlanStore(db *sql.DB) *PlanStore {
	return &PlanStore{db: db}
}

// planColumns lists the columns selected in plan queries.
const planColumns = `id, name, price, tagline, features, plan_type,
	server_type, cta_text, featured, status, sort_order, created_at, updated_at`

// scanPlan scans a plan row, unmarshalling the JSONB features column.
func scanPlan(scanner interface{ Scan(...any) error }) (*models.Plan, error) {
	var p models.Plan
	var featuresRaw []byte
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Price, &p.Tagline, &featuresRaw, &p.PlanType,
		&p.ServerType, &p.CTAText, &p.Featured, &p.Status, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Features, err = scanList(featuresRaw); err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}
	return &p, nil
}

// List returns plans matching the filter, ordered by sort_order ascending.
// Unlike the other resources, plans are manually ordered for display.
func (s *PlanStore) List(f PlanFilter) ([]models.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE 1=1`
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.PlanType != "" {
		args = append(args, f.PlanType)
		query += fmt.Sprintf(" AND plan_type = $%d", len(args))
	}
	// server_type is only a meaningful discriminator for cloud plans.
	if f.ServerType != "" && f.PlanType == models.PlanTypeBulut {
		args = append(args, f.ServerType)
		query += fmt.Sprintf(" AND server_type = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// FindByID retrieves a plan by its UUID. Returns nil if not found.
func (s *PlanStore) FindByID(id uuid.UUID) (*models.Plan, error) {
	p, err := scanPlan(s.db.QueryRow(
		`SELECT `+planColumns+` FROM plans WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find plan by id: %w", err)
	}
	return p, nil
}

// Create inserts a new plan and returns it with generated fields.
// ServerType is persisted only for cloud plans; other types store NULL.
func (s *PlanStore) Create(p *models.Plan) (*models.Plan, error) {
	features, err := jsonList(p.Features)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	serverType := p.ServerType
	if p.PlanType != models.PlanTypeBulut {
		serverType = nil
	}

	created, err := scanPlan(s.db.QueryRow(`
		INSERT INTO plans (name, price, tagline, features, plan_type,
		                   server_type, cta_text, featured, status, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+planColumns,
		p.Name, p.Price, p.Tagline, features, p.PlanType,
		serverType, p.CTAText, p.Featured, p.Status, p.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return created, nil
}

// Update modifies an existing plan.
func (s *PlanStore) Update(p *models.Plan) error {
	features, err := jsonList(p.Features)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}

	serverType := p.ServerType
	if p.PlanType != models.PlanTypeBulut {
		serverType = nil
	}

	_, err = s.db.Exec(`
		UPDATE plans SET
			name = $1, price = $2, tagline = $3, features = $4,
			plan_type = $5, server_type = $6, cta_text = $7, featured = $8,
			status = $9, sort_order = $10, updated_at = NOW()
		WHERE id = $11`,
		p.Name, p.Price, p.Tagline, features, p.PlanType,
		serverType, p.CTAText, p.Featured, p.Status, p.SortOrder, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// ToggleFeatured flips the featured flag and returns the new value.
func (s *PlanStore) ToggleFeatured(id uuid.UUID) (bool, error) {
	var featured bool
	err := s.db.QueryRow(`
		UPDATE plans SET featured = NOT featured, updated_at = NOW()
		WHERE id = $1 RETURNING featured`, id).Scan(&featured)
	if err != nil {
		return false, fmt.Errorf("toggle plan featured: %w", err)
	}
	return featured, nil
}

// Reorder assigns new sort_order values in a single transaction. The
// slice order is the desired display order.
func (s *PlanStore) Reorder(ids []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder plans: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE plans SET sort_order = $1, updated_at = NOW() WHERE id = $2`)
	if err != nil {
		return fmt.Errorf("reorder plans: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id); err != nil {
			return fmt.Errorf("reorder plans: %w", err)
		}
	}
	return tx.Commit()
}

// Delete removes a plan by ID.
func (s *PlanStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

// ProjectFilter narrows project List queries. Zero values mean "no filter";
// Featured is a pointer so "only non-featured" remains expressible.
type ProjectFilter struct {
	Status   models.ProjectStatus
	Category string
	Featured *bool
	Limit    int
	Offset   int
}

// ProjectStore handles all reference project database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// projectColumns lists the columns selected in project queries.
const projectColumns = `id, company, project_name, description, category,
	year, duration, team_size, technologies, challenges, results,
	featured, status, logo_data, logo, created_at, updated_at`

// scanProject scans a project row, unmarshalling the JSONB list columns.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	var techRaw, challengesRaw, resultsRaw []byte
	err := scanner.Scan(
		&p.ID, &p.Company, &p.ProjectName, &p.Description, &p.Category,
		&p.Year, &p.Duration, &p.TeamSize, &techRaw, &challengesRaw,
		&resultsRaw, &p.Featured, &p.Status, &p.LogoData, &p.Logo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Technologies, err = scanList(techRaw); err != nil {
		return nil, fmt.Errorf("technologies: %w", err)
	}
	if p.Challenges, err = scanList(challengesRaw); err != nil {
		return nil, fmt.Errorf("challenges: %w", err)
	}
	if p.Results, err = scanList(resultsRaw); err != nil {
		return nil, fmt.Errorf("results: %w", err)
	}
	return &p, nil
}

// List returns projects matching the filter, newest first by creation time.
func (s *ProjectStore) List(f ProjectFilter) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE 1=1`
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	tech, err := jsonList(p.Technologies)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	challenges, err := jsonList(p.Challenges)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	results, err := jsonList(p.Results)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (company, project_name, description, category,
		                      year, duration, team_size, technologies,
		                      challenges, results, featured, status,
		                      logo_data, logo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+projectColumns,
		p.Company, p.ProjectName, p.Description, p.Category,
		p.Year, p.Duration, p.TeamSize, tech, challenges, results,
		p.Featured, p.Status, p.LogoData, p.Logo,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	tech, err := jsonList(p.Technologies)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	challenges, err := jsonList(p.Challenges)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	results, err := jsonList(p.Results)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE projects SET
			company = $1, project_name = $2, description = $3, category = $4,
			year = $5, duration = $6, team_size = $7, technologies = $8,
			challenges = $9, results = $10, featured = $11, status = $12,
			logo_data = $13, logo = $14, updated_at = NOW()
		WHERE id = $15`,
		p.Company, p.ProjectName, p.Description, p.Category,
		p.Year, p.Duration, p.TeamSize, tech, challenges, results,
		p.Featured, p.Status, p.LogoData, p.Logo, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// ToggleFeatured flips the featured flag and returns the new value.
func (s *ProjectStore) ToggleFeatured(id uuid.UUID) (bool, error) {
	var featured bool
	err := s.db.QueryRow(`
		UPDATE projects SET featured = NOT featured, updated_at = NOW()
		WHERE id = $1 RETURNING featured`, id).Scan(&featured)
	if err != nil {
		return false, fmt.Errorf("toggle project featured: %w", err)
	}
	return featured, nil
}

// SetStatus moves a project between active, completed, and archived.
func (s *ProjectStore) SetStatus(id uuid.UUID, status models.ProjectStatus) error {
	_, err := s.db.Exec(`
		UPDATE projects SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("set project status: %w", err)
	}
	return nil
}

// Delete removes a project by ID. No cascading cleanup is performed.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Count returns the number of projects.
func (s *ProjectStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

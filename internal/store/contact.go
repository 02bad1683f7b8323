// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

// ContactFilter narrows contact message List queries.
type ContactFilter struct {
	Status models.ContactStatus
	Limit  int
	Offset int
}

// ContactStore handles contact form submission database operations.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore with the given database connection.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// contactColumns lists the columns selected in contact message queries.
const contactColumns = `id, name, email, phone, project_type, message,
	status, source, user_agent, created_at`

// scanContact scans a contact message row from the result set.
func scanContact(scanner interface{ Scan(...any) error }) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Email, &m.Phone, &m.ProjectType, &m.Message,
		&m.Status, &m.Source, &m.UserAgent, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns contact messages matching the filter, newest first.
func (s *ContactStore) List(f ContactFilter) ([]models.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE 1=1`
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
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
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

// FindByID retrieves a contact message by its UUID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	m, err := scanContact(s.db.QueryRow(
		`SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact message by id: %w", err)
	}
	return m, nil
}

// Create inserts a new contact message. Called exactly once per visitor
// submission, after the antispam pipeline has passed.
func (s *ContactStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	created, err := scanContact(s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, phone, project_type,
		                              message, status, source, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+contactColumns,
		m.Name, m.Email, m.Phone, m.ProjectType,
		m.Message, m.Status, m.Source, m.UserAgent,
	))
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return created, nil
}

// UpdateStatus sets the handling status. Any status may be set at any
// time; transitions are an admin convention, not a database constraint.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.ContactStatus) error {
	_, err := s.db.Exec(`UPDATE contact_messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update contact message status: %w", err)
	}
	return nil
}

// Delete removes a contact message by ID.
func (s *ContactStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

// CountByStatus returns the number of messages in a given status.
// Used by the admin dashboard for the "new messages" badge.
func (s *ContactStore) CountByStatus(status models.ContactStatus) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return count, nil
}

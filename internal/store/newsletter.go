// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"gozcuweb/internal/models"
)

// NewsletterStore handles newsletter subscriber database operations.
// PostgreSQL is the single source of truth for subscriptions.
type NewsletterStore struct {
	db *sql.DB
}

// NewNewsletterStore creates a new NewsletterStore with the given database connection.
func NewNewsletterStore(db *sql.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

// newsletterColumns lists the columns selected in subscriber queries.
const newsletterColumns = `id, email, status, source, subscribed_at`

// scanSubscriber scans a subscriber row from the result set.
func scanSubscriber(scanner interface{ Scan(...any) error }) (*models.NewsletterSubscriber, error) {
	var n models.NewsletterSubscriber
	err := scanner.Scan(&n.ID, &n.Email, &n.Status, &n.Source, &n.SubscribedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Subscribe upserts a subscription keyed by email. A brand-new or
// previously unsubscribed address becomes pending again; an address that
// is already pending or confirmed is left untouched.
func (s *NewsletterStore) Subscribe(email, source string) (*models.NewsletterSubscriber, error) {
	sub, err := scanSubscriber(s.db.QueryRow(`
		INSERT INTO newsletter_subscribers (email, status, source)
		VALUES ($1, 'pending', $2)
		ON CONFLICT (email) DO UPDATE SET
			status = CASE
				WHEN newsletter_subscribers.status = 'unsubscribed' THEN 'pending'
				ELSE newsletter_subscribers.status
			END,
			subscribed_at = CASE
				WHEN newsletter_subscribers.status = 'unsubscribed' THEN NOW()
				ELSE newsletter_subscribers.subscribed_at
			END
		RETURNING `+newsletterColumns,
		email, source,
	))
	if err != nil {
		return nil, fmt.Errorf("subscribe newsletter: %w", err)
	}
	return sub, nil
}

// Confirm marks a pending subscription as confirmed.
func (s *NewsletterStore) Confirm(email string) error {
	_, err := s.db.Exec(`
		UPDATE newsletter_subscribers SET status = 'confirmed'
		WHERE email = $1 AND status = 'pending'`, email)
	if err != nil {
		return fmt.Errorf("confirm newsletter subscription: %w", err)
	}
	return nil
}

// Unsubscribe marks a subscription as unsubscribed. The row is kept so
// re-subscription and suppression-list exports keep working.
func (s *NewsletterStore) Unsubscribe(email string) error {
	_, err := s.db.Exec(`
		UPDATE newsletter_subscribers SET status = 'unsubscribed' WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("unsubscribe newsletter: %w", err)
	}
	return nil
}

// List returns all subscribers, newest first.
func (s *NewsletterStore) List() ([]models.NewsletterSubscriber, error) {
	rows, err := s.db.Query(`
		SELECT ` + newsletterColumns + ` FROM newsletter_subscribers
		ORDER BY subscribed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list newsletter subscribers: %w", err)
	}
	defer rows.Close()

	var subs []models.NewsletterSubscriber
	for rows.Next() {
		n, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("scan newsletter subscriber: %w", err)
		}
		subs = append(subs, *n)
	}
	return subs, rows.Err()
}

// FindByEmail retrieves a subscriber by email. Returns nil if not found.
func (s *NewsletterStore) FindByEmail(email string) (*models.NewsletterSubscriber, error) {
	n, err := scanSubscriber(s.db.QueryRow(
		`SELECT `+newsletterColumns+` FROM newsletter_subscribers WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find newsletter subscriber: %w", err)
	}
	return n, nil
}

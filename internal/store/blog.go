// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

// ErrPostNotFound is returned by counter updates addressing a slug that
// does not exist or is not published.
var ErrPostNotFound = errors.New("blog post not found")

// BlogFilter narrows List queries. Zero values mean "no filter".
type BlogFilter struct {
	Status   models.BlogStatus
	Category string
	Limit    int
	Offset   int
}

// BlogStore handles all blog post database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// blogColumns lists the columns selected in blog post queries.
const blogColumns = `id, title, slug, excerpt, content, category, author,
	featured_image, read_time, status, views, likes, created_at, updated_at`

// scanBlogPost scans a blog post row from the result set.
func scanBlogPost(scanner interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category,
		&p.Author, &p.FeaturedImage, &p.ReadTime, &p.Status, &p.Views,
		&p.Likes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns blog posts matching the filter, newest first by creation time.
func (s *BlogStore) List(f BlogFilter) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE 1=1`
	var args []any

	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
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
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a blog post by its UUID. Returns nil if not found.
func (s *BlogStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	p, err := scanBlogPost(s.db.QueryRow(
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published blog post by its slug.
// Used for public article pages.
func (s *BlogStore) FindBySlug(slug string) (*models.BlogPost, error) {
	p, err := scanBlogPost(s.db.QueryRow(
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND status = 'published'`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new blog post and returns it with generated fields.
// Timestamps are set database-side so client clock skew never affects
// stored ordering.
func (s *BlogStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	created, err := scanBlogPost(s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, excerpt, content, category,
		                        author, featured_image, read_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+blogColumns,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Category,
		p.Author, p.FeaturedImage, p.ReadTime, p.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return created, nil
}

// Update modifies an existing blog post. Views and likes are not touched
// here; they change only through their dedicated counters.
func (s *BlogStore) Update(p *models.BlogPost) error {
	_, err := s.db.Exec(`
		UPDATE blog_posts SET
			title = $1, slug = $2, excerpt = $3, content = $4, category = $5,
			author = $6, featured_image = $7, read_time = $8, status = $9,
			updated_at = NOW()
		WHERE id = $10`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Category,
		p.Author, p.FeaturedImage, p.ReadTime, p.Status, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

// SetStatus publishes or unpublishes a post.
func (s *BlogStore) SetStatus(id uuid.UUID, status models.BlogStatus) error {
	_, err := s.db.Exec(`
		UPDATE blog_posts SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("set blog post status: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter for a published post, by slug.
func (s *BlogStore) IncrementViews(slug string) error {
	_, err := s.db.Exec(`
		UPDATE blog_posts SET views = views + 1 WHERE slug = $1 AND status = 'published'`,
		slug)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// IncrementLikes bumps the like counter for a published post, by slug.
// Returns the new like count.
func (s *BlogStore) IncrementLikes(slug string) (int, error) {
	var likes int
	err := s.db.QueryRow(`
		UPDATE blog_posts SET likes = likes + 1
		WHERE slug = $1 AND status = 'published'
		RETURNING likes`, slug).Scan(&likes)
	if err == sql.ErrNoRows {
		return 0, ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment likes: %w", err)
	}
	return likes, nil
}

// Delete removes a blog post by ID.
func (s *BlogStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// Count returns the number of blog posts, optionally restricted to a status.
func (s *BlogStore) Count(status models.BlogStatus) (int, error) {
	var count int
	var err error
	if status == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts WHERE status = $1`, status).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return count, nil
}

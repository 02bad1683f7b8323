// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gozcuweb/internal/models"
)

// ErrSuperAdminImmutable is returned when an operation would delete or
// suspend the super admin account.
var ErrSuperAdminImmutable = errors.New("super admin account cannot be removed")

// UserStore handles all admin account database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// userColumns lists the columns selected in user queries.
const userColumns = `id, name, surname, email, password_hash, role, status,
	permissions, totp_secret, totp_enabled, created_at, last_login`

// scanUser scans a user row, unmarshalling the JSONB permissions column.
func scanUser(scanner interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	var permsRaw []byte
	err := scanner.Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role,
		&u.Status, &permsRaw, &u.TOTPSecret, &u.TOTPEnabled,
		&u.CreatedAt, &u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	if u.Permissions, err = scanList(permsRaw); err != nil {
		return nil, fmt.Errorf("permissions: %w", err)
	}
	return &u, nil
}

// FindByEmail retrieves a user by their email address. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by their UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// List returns all users ordered by creation date.
func (s *UserStore) List() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Create inserts a new user with a bcrypt-hashed password.
func (s *UserStore) Create(u *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	perms, err := jsonList(u.Permissions)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	created, err := scanUser(s.db.QueryRow(`
		INSERT INTO users (name, surname, email, password_hash, role, status, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		u.Name, u.Surname, u.Email, string(hash), u.Role, u.Status, perms,
	))
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Update modifies a user's profile, role, status, and permissions.
// The password and TOTP fields change only through their dedicated methods.
func (s *UserStore) Update(u *models.User) error {
	perms, err := jsonList(u.Permissions)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE users SET
			name = $1, surname = $2, email = $3, role = $4, status = $5,
			permissions = $6
		WHERE id = $7`,
		u.Name, u.Surname, u.Email, u.Role, u.Status, perms, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetPassword replaces a user's password with a new bcrypt hash.
func (s *UserStore) SetPassword(userID uuid.UUID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, string(hash), userID)
	if err != nil {
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}

// SetTOTPSecret saves the TOTP secret for a user during 2FA setup.
func (s *UserStore) SetTOTPSecret(userID uuid.UUID, secret string) error {
	_, err := s.db.Exec(`UPDATE users SET totp_secret = $1 WHERE id = $2`, secret, userID)
	if err != nil {
		return fmt.Errorf("set totp secret: %w", err)
	}
	return nil
}

// EnableTOTP marks 2FA as active after a successful code verification.
func (s *UserStore) EnableTOTP(userID uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE users SET totp_enabled = TRUE WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("enable totp: %w", err)
	}
	return nil
}

// ResetTOTP clears the TOTP secret and disables 2FA. The user is forced
// to set up 2FA again on their next login.
func (s *UserStore) ResetTOTP(userID uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE users SET totp_secret = NULL, totp_enabled = FALSE WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("reset totp: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful sign-in time, database-side.
func (s *UserStore) TouchLastLogin(userID uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// Delete removes a user by ID. The super admin account is protected.
func (s *UserStore) Delete(userID uuid.UUID) error {
	u, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}
	if u.IsSuperAdmin() {
		return ErrSuperAdminImmutable
	}
	if _, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the user's stored hash.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

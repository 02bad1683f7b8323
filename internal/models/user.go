// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an admin account's permission level.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleModerator  Role = "moderator"
)

// UserStatus represents whether an admin account may sign in.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents an admin panel account. Permissions is a set of
// capability tags stored as JSONB, checked in addition to the role.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize the hash
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Permissions  []string   `json:"permissions"`
	TOTPSecret   *string    `json:"-"` // Nullable; set during 2FA setup
	TOTPEnabled  bool       `json:"totp_enabled"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// IsSuperAdmin returns true for the super admin role. Super admin
// accounts cannot be deleted.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanManageUsers returns true if the role may create, edit, or delete
// other admin accounts.
func (u *User) CanManageUsers() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin
}

// IsActive returns true if the account is allowed to sign in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasPermission checks whether the user carries the given capability tag.
func (u *User) HasPermission(tag string) bool {
	for _, p := range u.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

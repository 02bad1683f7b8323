package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

func TestUserStoreCreateAndPassword(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-kullanici-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(&models.User{
		Name:        "Zeynep",
		Surname:     "Kaya",
		Email:       email,
		Role:        models.RoleEditor,
		Status:      models.UserStatusActive,
		Permissions: []string{"blog.write"},
	}, "gizli-parola-123")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}

	if !s.CheckPassword(created, "gizli-parola-123") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(created, "yanlis-parola") {
		t.Error("wrong password accepted")
	}
	if !created.HasPermission("blog.write") {
		t.Error("permissions did not round-trip")
	}
}

func TestUserStoreDeleteProtectsSuperAdmin(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-patron-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(&models.User{
		Name: "Kurucu", Surname: "Hesap", Email: email,
		Role: models.RoleSuperAdmin, Status: models.UserStatusActive,
	}, "parola")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = s.Delete(created.ID)
	if !errors.Is(err, ErrSuperAdminImmutable) {
		t.Fatalf("Delete super admin: got %v, want ErrSuperAdminImmutable", err)
	}

	still, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if still == nil {
		t.Fatal("super admin was deleted")
	}
}

func TestUserStoreTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	email := "test-2fa-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	created, err := s.Create(&models.User{
		Name: "İki", Surname: "Faktör", Email: email,
		Role: models.RoleAdmin, Status: models.UserStatusActive,
	}, "parola")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.SetTOTPSecret(created.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(created.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	u, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !u.TOTPEnabled || u.TOTPSecret == nil {
		t.Error("2FA not enabled after setup")
	}

	if err := s.ResetTOTP(created.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	u, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u.TOTPEnabled || u.TOTPSecret != nil {
		t.Error("2FA still active after reset")
	}
}

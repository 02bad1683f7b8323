package store

import (
	"testing"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

func strPtr(s models.ServerType) *models.ServerType { return &s }

func TestPlanStoreCreateAndList(t *testing.T) {
	db := testDB(t)
	s := NewPlanStore(db)

	name := "Test Bulut Başlangıç " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPlans(t, db, name) })

	created, err := s.Create(&models.Plan{
		Name:       name,
		Price:      "₺499/ay",
		Tagline:    "Küçük ekipler için",
		Features:   []string{"2 vCPU", "4 GB RAM", "80 GB SSD"},
		PlanType:   models.PlanTypeBulut,
		ServerType: strPtr(models.ServerTypeLinux),
		CTAText:    "Hemen Başla",
		Status:     models.PlanStatusActive,
		SortOrder:  100,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ServerType == nil || *created.ServerType != models.ServerTypeLinux {
		t.Error("expected linux server type to round-trip")
	}
	if len(created.Features) != 3 {
		t.Errorf("features: got %d, want 3", len(created.Features))
	}
}

func TestPlanStoreServerTypeOnlyForCloud(t *testing.T) {
	db := testDB(t)
	s := NewPlanStore(db)

	name := "Test Web Paketi " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPlans(t, db, name) })

	// A web plan carrying a server type must be stored without one.
	created, err := s.Create(&models.Plan{
		Name:       name,
		Price:      "₺9.900",
		PlanType:   models.PlanTypeWeb,
		ServerType: strPtr(models.ServerTypeLinux),
		Status:     models.PlanStatusActive,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ServerType != nil {
		t.Errorf("server type: got %q, want nil for web plan", *created.ServerType)
	}
}

func TestPlanStoreListServerTypeFilter(t *testing.T) {
	db := testDB(t)
	s := NewPlanStore(db)

	linuxName := "Test Linux Plan " + uuid.NewString()[:8]
	windowsName := "Test Windows Plan " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPlans(t, db, linuxName, windowsName) })

	for _, p := range []*models.Plan{
		{Name: linuxName, Price: "₺499/ay", PlanType: models.PlanTypeBulut,
			ServerType: strPtr(models.ServerTypeLinux), Status: models.PlanStatusActive},
		{Name: windowsName, Price: "₺799/ay", PlanType: models.PlanTypeBulut,
			ServerType: strPtr(models.ServerTypeWindows), Status: models.PlanStatusActive},
	} {
		if _, err := s.Create(p); err != nil {
			t.Fatalf("Create %s: %v", p.Name, err)
		}
	}

	// Filtering cloud plans by server type returns only matching rows.
	plans, err := s.List(PlanFilter{
		PlanType:   models.PlanTypeBulut,
		ServerType: models.ServerTypeLinux,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, p := range plans {
		if p.ServerType == nil || *p.ServerType != models.ServerTypeLinux {
			t.Errorf("plan %q leaked through linux filter", p.Name)
		}
	}

	// The server type filter is ignored without a cloud plan type, so
	// both test plans must appear.
	plans, err = s.List(PlanFilter{ServerType: models.ServerTypeLinux})
	if err != nil {
		t.Fatalf("List without plan type: %v", err)
	}
	seen := map[string]bool{}
	for _, p := range plans {
		seen[p.Name] = true
	}
	if !seen[linuxName] || !seen[windowsName] {
		t.Error("server type filter should be a no-op without plan type bulut")
	}
}

func TestPlanStoreReorder(t *testing.T) {
	db := testDB(t)
	s := NewPlanStore(db)

	nameA := "Test Sıra A " + uuid.NewString()[:8]
	nameB := "Test Sıra B " + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPlans(t, db, nameA, nameB) })

	a, err := s.Create(&models.Plan{Name: nameA, Price: "₺1", PlanType: models.PlanTypeYazilim, Status: models.PlanStatusActive, SortOrder: 0})
	if err != nil {
		t.Fatalf("Create A: %v", err)
	}
	b, err := s.Create(&models.Plan{Name: nameB, Price: "₺2", PlanType: models.PlanTypeYazilim, Status: models.PlanStatusActive, SortOrder: 1})
	if err != nil {
		t.Fatalf("Create B: %v", err)
	}

	if err := s.Reorder([]uuid.UUID{b.ID, a.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	reA, err := s.FindByID(a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	reB, err := s.FindByID(b.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reB.SortOrder != 0 || reA.SortOrder != 1 {
		t.Errorf("sort order: got A=%d B=%d, want A=1 B=0", reA.SortOrder, reB.SortOrder)
	}
}

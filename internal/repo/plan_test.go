package repo

import (
	"testing"

	"gozcuweb/internal/models"
)

func srv(s models.ServerType) *models.ServerType { return &s }

func TestFilterPlansByType(t *testing.T) {
	plans := []models.Plan{
		{Name: "Bulut Linux", PlanType: models.PlanTypeBulut, ServerType: srv(models.ServerTypeLinux)},
		{Name: "Bulut Windows", PlanType: models.PlanTypeBulut, ServerType: srv(models.ServerTypeWindows)},
		{Name: "Kurumsal Web", PlanType: models.PlanTypeWeb},
		{Name: "Özel Yazılım", PlanType: models.PlanTypeYazilim},
	}

	web := FilterPlans(plans, models.PlanTypeWeb, "")
	if len(web) != 1 || web[0].Name != "Kurumsal Web" {
		t.Errorf("web filter: got %+v", web)
	}

	linux := FilterPlans(plans, models.PlanTypeBulut, models.ServerTypeLinux)
	if len(linux) != 1 || linux[0].Name != "Bulut Linux" {
		t.Errorf("linux filter: got %+v", linux)
	}
}

func TestFilterPlansServerTypeIgnoredOutsideCloud(t *testing.T) {
	plans := []models.Plan{
		{Name: "Kurumsal Web", PlanType: models.PlanTypeWeb},
		{Name: "E-Ticaret Web", PlanType: models.PlanTypeWeb},
	}

	// A server type without the cloud plan type must be a no-op.
	got := FilterPlans(plans, models.PlanTypeWeb, models.ServerTypeLinux)
	if len(got) != 2 {
		t.Errorf("server type should not discriminate web plans, got %d", len(got))
	}

	got = FilterPlans(plans, "", models.ServerTypeWindows)
	if len(got) != 2 {
		t.Errorf("server type without plan type should be a no-op, got %d", len(got))
	}
}

func TestFilterPlansEmptyFilterReturnsAll(t *testing.T) {
	plans := []models.Plan{
		{Name: "A", PlanType: models.PlanTypeBulut},
		{Name: "B", PlanType: models.PlanTypeYazilim},
	}
	got := FilterPlans(plans, "", "")
	if len(got) != len(plans) {
		t.Errorf("empty filter: got %d, want %d", len(got), len(plans))
	}
}

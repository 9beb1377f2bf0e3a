package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/catalog"
	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/service"
	"github.com/unclebandit/campaign-planner/internal/store"
)

func newService() (*service.PlanService, *MockPlanRepo, *MockQueue) {
	repo := NewMockPlanRepo()
	q := &MockQueue{}
	svc := &service.PlanService{
		Config:        allocator.DefaultConfig(catalog.Default()),
		PlanRepo:      repo,
		Store:         store.NewMemoryStore(),
		Queue:         q,
		ScheduleWeeks: 11,
		ScheduleStart: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Now:           func() time.Time { return time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC) },
	}
	return svc, repo, q
}

func TestCreatePlan(t *testing.T) {
	svc, repo, q := newService()
	ctx := context.Background()

	plan, err := svc.CreatePlan(ctx, 20, 1562.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ID == "" {
		t.Fatal("expected plan ID")
	}
	if _, err := repo.GetByID(plan.ID); err != nil {
		t.Errorf("plan not saved: %v", err)
	}
	if len(q.published) != 1 || q.published[0] != plan.ID {
		t.Errorf("expected export job for %s, got %v", plan.ID, q.published)
	}
	if q.topics[0] != queue.PlanExportsTopic {
		t.Errorf("expected default topic, got %s", q.topics[0])
	}

	last, ok, err := svc.LastPlan(ctx)
	if err != nil || !ok {
		t.Fatalf("expected last plan cached, ok=%v err=%v", ok, err)
	}
	eq := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(plan.Items, last.Items, eq); diff != "" {
		t.Errorf("cached plan differs (-created +cached):\n%s", diff)
	}
}

func TestPreviewMatchesAllocator(t *testing.T) {
	svc, _, q := newService()
	p := svc.Preview(12, 900)
	if p.ID != "" {
		t.Errorf("preview should not be saved, got ID %s", p.ID)
	}
	if len(q.published) != 0 {
		t.Error("preview should not publish export jobs")
	}
}

func TestGetPlanNotFound(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.GetPlan("missing")

	var nf *appErrors.ErrPlanNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPagination(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := svc.CreatePlan(ctx, float64(5+i), 1000); err != nil {
			t.Fatal(err)
		}
	}

	page1, pagination1, _ := svc.ListPlans(1, 2)
	page2, _, _ := svc.ListPlans(2, 2)
	page3, pagination3, _ := svc.ListPlans(3, 2)

	if pagination1["total_count"] != 5 || pagination1["total_pages"] != 3 {
		t.Errorf("unexpected pagination: %v", pagination1)
	}
	if len(page1) != 2 || len(page2) != 2 || len(page3) != 1 {
		t.Fatalf("unexpected page sizes %d %d %d", len(page1), len(page2), len(page3))
	}
	if page1[1].ID == page2[0].ID {
		t.Errorf("duplicate entry between pages: %v", page1[1].ID)
	}
	if pagination3["page"] != 3 {
		t.Errorf("expected page 3, got %d", pagination3["page"])
	}

	_, clamped, _ := svc.ListPlans(0, 1000)
	if clamped["page"] != 1 || clamped["page_size"] != 100 {
		t.Errorf("expected clamped paging, got %v", clamped)
	}
}

func TestRenderExport(t *testing.T) {
	svc, repo, _ := newService()
	plan, _ := svc.CreatePlan(context.Background(), 20, 1562.5)

	text, err := svc.ExportText(plan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "CAMPAIGN PLAN OUTLINE") {
		t.Errorf("expected rendered outline on demand, got %q", text)
	}

	if err := svc.RenderExport(plan.ID); err != nil {
		t.Fatal(err)
	}
	stored, _ := repo.GetByID(plan.ID)
	if stored.ExportText != text {
		t.Errorf("stored export differs from on-demand render")
	}
	if !strings.Contains(stored.ExportText, "Generated: 1/15/2024") {
		t.Errorf("expected plan creation date in outline:\n%s", stored.ExportText)
	}

	if err := svc.RenderExport("missing"); err == nil {
		t.Error("expected error for missing plan")
	}
}

func TestScheduleAndApprove(t *testing.T) {
	svc, _, _ := newService()
	plan, _ := svc.CreatePlan(context.Background(), 20, 1562.5)

	before, err := svc.Schedule(plan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Weeks) != 11 {
		t.Fatalf("expected 11 weeks, got %d", len(before.Weeks))
	}
	if !before.Weeks[0].IsCurrentWeek {
		t.Error("expected week 1 to be current")
	}

	if _, err := svc.Approve(plan.ID, 2, "Canvassing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := svc.Schedule(plan.ID)
	if after.PendingApprovals != before.PendingApprovals-1 {
		t.Errorf("expected pending to drop by one: %d -> %d", before.PendingApprovals, after.PendingApprovals)
	}

	var weekErr *appErrors.ErrWeekOutOfRange
	if _, err := svc.Approve(plan.ID, 0, "Canvassing"); !errors.As(err, &weekErr) {
		t.Errorf("expected week out of range, got %v", err)
	}
	var notScheduled *appErrors.ErrActivityNotScheduled
	if _, err := svc.Approve(plan.ID, 1, "Digital Ads"); !errors.As(err, &notScheduled) {
		t.Errorf("expected not scheduled, got %v", err)
	}
}

func TestCouple(t *testing.T) {
	svc, _, _ := newService()

	tm := 40.0
	c, err := svc.Couple(&tm, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !c.BudgetPerWeek.Equal(decimal.NewFromInt(313)) {
		t.Errorf("expected budget 313, got %s", c.BudgetPerWeek)
	}

	b := 3125.0
	c, _ = svc.Couple(nil, &b)
	if c.TimeHoursPerWeek != 5 {
		t.Errorf("expected 5 hours, got %v", c.TimeHoursPerWeek)
	}

	if _, err := svc.Couple(nil, nil); err == nil {
		t.Error("expected error without inputs")
	}
}

func TestGoal(t *testing.T) {
	svc, _, _ := newService()
	g := svc.Goal(1250)
	if g.ContactGoal != 6250 || g.TargetVoters != 1875 {
		t.Errorf("unexpected goal: %+v", g)
	}
}

func TestCreatePlanUsesConfiguredExportTopic(t *testing.T) {
	svc, _, q := newService()
	svc.ExportTopic = "planner_exports"

	if _, err := svc.CreatePlan(context.Background(), 20, 1562.5); err != nil {
		t.Fatal(err)
	}
	if len(q.topics) != 1 || q.topics[0] != "planner_exports" {
		t.Errorf("expected job on planner_exports, got %v", q.topics)
	}
}

func TestScheduleStartsAtCreationWhenUnset(t *testing.T) {
	svc, _, _ := newService()
	svc.ScheduleStart = time.Time{}
	svc.Now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }

	plan, _ := svc.CreatePlan(context.Background(), 20, 1562.5)
	res, err := svc.Schedule(plan.ID)
	if err != nil {
		t.Fatal(err)
	}

	// the mock repo stamps plans at 2024-01-15 09:00
	if want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC); !res.Weeks[0].StartDate.Equal(want) {
		t.Errorf("expected week 1 to start %v, got %v", want, res.Weeks[0].StartDate)
	}
	if !res.Weeks[2].IsCurrentWeek {
		t.Error("expected week 3 to be current")
	}
}

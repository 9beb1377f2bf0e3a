// internal/service/plan_service.go
package service

import (
    "context"
    "errors"
    "log"
    "time"

    "github.com/shopspring/decimal"

    "github.com/unclebandit/campaign-planner/internal/allocator"
    "github.com/unclebandit/campaign-planner/internal/export"
    "github.com/unclebandit/campaign-planner/internal/model"
    "github.com/unclebandit/campaign-planner/internal/queue"
    "github.com/unclebandit/campaign-planner/internal/repository"
    "github.com/unclebandit/campaign-planner/internal/schedule"
    "github.com/unclebandit/campaign-planner/internal/store"
)

type PlanService struct {
    Config   allocator.Config
    PlanRepo repository.PlanRepositoryInterface
    Store    store.Store
    Queue    queue.Queue
    // ExportTopic defaults to queue.PlanExportsTopic.
    ExportTopic string

    ScheduleWeeks int
    ScheduleStart time.Time
    Now           func() time.Time
}

// Coupling is the other slider's position after one of them moved.
type Coupling struct {
    TimeHoursPerWeek float64         `json:"time_hours_per_week"`
    BudgetPerWeek    decimal.Decimal `json:"budget_per_week"`
}

type Goal struct {
    WinNumber    int `json:"win_number"`
    ContactGoal  int `json:"contact_goal"`
    TargetVoters int `json:"target_voters"`
}

type ScheduleResult struct {
    PlanID           string             `json:"plan_id"`
    Weeks            []model.WeeklyPlan `json:"weeks"`
    PendingApprovals int                `json:"pending_approvals"`
}

func (s *PlanService) exportTopic() string {
    if s.ExportTopic != "" {
        return s.ExportTopic
    }
    return queue.PlanExportsTopic
}

func (s *PlanService) now() time.Time {
    if s.Now != nil {
        return s.Now()
    }
    return time.Now()
}

// Preview computes a plan without saving it.
func (s *PlanService) Preview(timeHours, budget float64) model.Plan {
    return allocator.Allocate(s.Config, timeHours, budget)
}

// CreatePlan computes, saves and queues the outline rendering for a plan.
func (s *PlanService) CreatePlan(ctx context.Context, timeHours, budget float64) (*model.Plan, error) {
    plan := allocator.Allocate(s.Config, timeHours, budget)

    if err := s.PlanRepo.Create(&plan); err != nil {
        return nil, err
    }

    if s.Store != nil {
        if err := store.SetJSON(ctx, s.Store, store.LastPlanKey, plan); err != nil {
            log.Println("⚠️ failed to cache last plan:", err)
        }
    }

    if s.Queue != nil {
        if err := s.Queue.Publish(s.exportTopic(), plan.ID); err != nil {
            log.Println("⚠️ failed to enqueue export for plan", plan.ID, ":", err)
        }
    }

    return &plan, nil
}

// LastPlan returns the most recently created plan, if any.
func (s *PlanService) LastPlan(ctx context.Context) (*model.Plan, bool, error) {
    if s.Store == nil {
        return nil, false, nil
    }
    var plan model.Plan
    ok, err := store.GetJSON(ctx, s.Store, store.LastPlanKey, &plan)
    if err != nil || !ok {
        return nil, false, err
    }
    return &plan, true, nil
}

func (s *PlanService) GetPlan(id string) (*model.Plan, error) {
    return s.PlanRepo.GetByID(id)
}

// ListPlans fetches plans with pagination
func (s *PlanService) ListPlans(page, pageSize int) ([]model.Plan, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.PlanRepo.ListPlans(offset, pageSize)
    if err != nil {
        return nil, nil, err
    }

    plans := make([]model.Plan, len(ptrs))
    for i, p := range ptrs {
        plans[i] = *p
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return plans, pagination, nil
}

// RenderExport builds the plain-text outline and stores it on the plan.
func (s *PlanService) RenderExport(planID string) error {
    plan, err := s.PlanRepo.GetByID(planID)
    if err != nil {
        return err
    }
    return s.PlanRepo.UpdateExport(plan.ID, export.Outline(*plan, plan.CreatedAt))
}

// ExportText returns the stored outline, rendering it when the worker has not yet.
func (s *PlanService) ExportText(planID string) (string, error) {
    plan, err := s.PlanRepo.GetByID(planID)
    if err != nil {
        return "", err
    }
    if plan.ExportText != "" {
        return plan.ExportText, nil
    }
    return export.Outline(*plan, plan.CreatedAt), nil
}

func (s *PlanService) Schedule(planID string) (*ScheduleResult, error) {
    plan, err := s.PlanRepo.GetByID(planID)
    if err != nil {
        return nil, err
    }
    approvals, err := s.PlanRepo.ListApprovals(planID)
    if err != nil {
        return nil, err
    }

    weeks := s.weeks(plan)
    schedule.ApplyApprovals(weeks, approvals)

    return &ScheduleResult{
        PlanID:           plan.ID,
        Weeks:            weeks,
        PendingApprovals: schedule.PendingApprovals(weeks),
    }, nil
}

// Approve signs off the script of one scheduled activity.
func (s *PlanService) Approve(planID string, week int, activity string) (*model.Approval, error) {
    plan, err := s.PlanRepo.GetByID(planID)
    if err != nil {
        return nil, err
    }
    if _, err := schedule.Find(s.weeks(plan), week, activity); err != nil {
        return nil, err
    }

    a := &model.Approval{PlanID: plan.ID, Week: week, Activity: activity, ApprovedAt: s.now()}
    if err := s.PlanRepo.AddApproval(a); err != nil {
        return nil, err
    }
    log.Printf("✅ Approved %s in week %d for plan %s\n", activity, week, plan.ID)
    return a, nil
}

func (s *PlanService) weeks(plan *model.Plan) []model.WeeklyPlan {
    n := s.ScheduleWeeks
    if n < 1 {
        n = schedule.DefaultWeeks
    }
    start := s.ScheduleStart
    if start.IsZero() {
        start = plan.CreatedAt
    }
    return schedule.Build(*plan, s.Config.Activities, n, start, s.now())
}

// Couple moves one slider from the other's position. Exactly one of time or
// budget should be set; time wins when both are.
func (s *PlanService) Couple(timeHours, budget *float64) (*Coupling, error) {
    switch {
    case timeHours != nil:
        t := s.Config.ClampTime(*timeHours)
        return &Coupling{TimeHoursPerWeek: t, BudgetPerWeek: allocator.BudgetForTime(s.Config, t)}, nil
    case budget != nil:
        b := s.Config.ClampBudget(*budget)
        return &Coupling{TimeHoursPerWeek: allocator.TimeForBudget(s.Config, *budget), BudgetPerWeek: b}, nil
    }
    return nil, errors.New("time_hours or budget is required")
}

func (s *PlanService) Goal(winNumber int) Goal {
    return Goal{
        WinNumber:    winNumber,
        ContactGoal:  allocator.ContactGoal(winNumber),
        TargetVoters: allocator.TargetVoters(winNumber),
    }
}

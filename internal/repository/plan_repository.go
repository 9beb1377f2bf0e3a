// internal/repository/plan_repository.go
package repository

import (
    "database/sql"
    "encoding/json"
    "time"

    "github.com/google/uuid"

    appErrors "github.com/unclebandit/campaign-planner/internal/errors"
    "github.com/unclebandit/campaign-planner/internal/model"
)

type PlanRepositoryInterface interface {
    Create(p *model.Plan) error
    GetByID(id string) (*model.Plan, error)
    ListPlans(offset, limit int) ([]*model.Plan, int, error)
    UpdateExport(id, text string) error

    // Script approvals
    AddApproval(a *model.Approval) error
    ListApprovals(planID string) ([]model.Approval, error)
}

type PlanRepository struct {
    DB *sql.DB
}

// ====================== Plans ======================

func (r *PlanRepository) Create(p *model.Plan) error {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    p.CreatedAt = time.Now()

    items, err := json.Marshal(p.Items)
    if err != nil {
        return err
    }
    totals, err := json.Marshal(p.Totals)
    if err != nil {
        return err
    }

    query := `
        INSERT INTO plans (id, time_hours, budget, contact_goal, items, totals, export_text, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
    _, err = r.DB.Exec(query,
        p.ID, p.Resources.TimeHoursPerWeek, p.Resources.BudgetPerWeek, p.Resources.ContactGoal,
        items, totals, p.ExportText, p.CreatedAt,
    )
    return err
}

const planColumns = `id, time_hours, budget, contact_goal, items, totals, export_text, created_at, updated_at`

type rowScanner interface {
    Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*model.Plan, error) {
    var p model.Plan
    var items, totals []byte
    err := row.Scan(
        &p.ID, &p.Resources.TimeHoursPerWeek, &p.Resources.BudgetPerWeek, &p.Resources.ContactGoal,
        &items, &totals, &p.ExportText, &p.CreatedAt, &p.UpdatedAt,
    )
    if err != nil {
        return nil, err
    }
    if err := json.Unmarshal(items, &p.Items); err != nil {
        return nil, err
    }
    if err := json.Unmarshal(totals, &p.Totals); err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *PlanRepository) GetByID(id string) (*model.Plan, error) {
    if _, err := uuid.Parse(id); err != nil {
        return nil, appErrors.NewPlanNotFound(id)
    }
    p, err := scanPlan(r.DB.QueryRow(`SELECT `+planColumns+` FROM plans WHERE id=$1`, id))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewPlanNotFound(id)
        }
        return nil, err
    }
    return p, nil
}

func (r *PlanRepository) ListPlans(offset, limit int) ([]*model.Plan, int, error) {
    plans := []*model.Plan{}
    rows, err := r.DB.Query(`SELECT `+planColumns+` FROM plans ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        p, err := scanPlan(rows)
        if err != nil {
            return nil, 0, err
        }
        plans = append(plans, p)
    }
    if err := rows.Err(); err != nil {
        return nil, 0, err
    }

    var total int
    if err := r.DB.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&total); err != nil {
        return nil, 0, err
    }
    return plans, total, nil
}

func (r *PlanRepository) UpdateExport(id, text string) error {
    res, err := r.DB.Exec(`UPDATE plans SET export_text=$1, updated_at=NOW() WHERE id=$2`, text, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return appErrors.NewPlanNotFound(id)
    }
    return nil
}

// ====================== Approvals ======================

// Idempotent insert
func (r *PlanRepository) AddApproval(a *model.Approval) error {
    if a.ApprovedAt.IsZero() {
        a.ApprovedAt = time.Now()
    }
    query := `
        INSERT INTO plan_approvals (plan_id, week, activity, approved_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (plan_id, week, activity) DO NOTHING
    `
    _, err := r.DB.Exec(query, a.PlanID, a.Week, a.Activity, a.ApprovedAt)
    return err
}

func (r *PlanRepository) ListApprovals(planID string) ([]model.Approval, error) {
    rows, err := r.DB.Query(`SELECT plan_id, week, activity, approved_at FROM plan_approvals WHERE plan_id=$1 ORDER BY week, activity`, planID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    approvals := []model.Approval{}
    for rows.Next() {
        var a model.Approval
        if err := rows.Scan(&a.PlanID, &a.Week, &a.Activity, &a.ApprovedAt); err != nil {
            return nil, err
        }
        approvals = append(approvals, a)
    }
    return approvals, rows.Err()
}

var _ PlanRepositoryInterface = (*PlanRepository)(nil)

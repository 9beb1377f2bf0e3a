// internal/controller/plan_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    "github.com/unclebandit/campaign-planner/internal/allocator"
    appErrors "github.com/unclebandit/campaign-planner/internal/errors"
    "github.com/unclebandit/campaign-planner/internal/service"
)

type PlanController struct {
    PlanService *service.PlanService
}

// WriteError maps service errors onto HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
    var notFound *appErrors.ErrPlanNotFound
    var weekOut *appErrors.ErrWeekOutOfRange
    var notScheduled *appErrors.ErrActivityNotScheduled

    switch {
    case errors.As(err, &notFound):
        http.Error(w, err.Error(), http.StatusNotFound)
    case errors.As(err, &weekOut), errors.As(err, &notScheduled):
        http.Error(w, err.Error(), http.StatusBadRequest)
    default:
        http.Error(w, err.Error(), http.StatusInternalServerError)
    }
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

// floatParam returns nil when the query parameter is absent.
func floatParam(r *http.Request, name string) (*float64, error) {
    raw := r.URL.Query().Get(name)
    if raw == "" {
        return nil, nil
    }
    v, err := strconv.ParseFloat(raw, 64)
    if err != nil {
        return nil, errors.New("invalid " + name)
    }
    return &v, nil
}

func (c *PlanController) CreatePlan(w http.ResponseWriter, r *http.Request) {
    var body struct {
        TimeHours float64 `json:"time_hours"`
        Budget    float64 `json:"budget"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    plan, err := c.PlanService.CreatePlan(r.Context(), body.TimeHours, body.Budget)
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, plan)
}

func (c *PlanController) ListPlans(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

    plans, pagination, err := c.PlanService.ListPlans(page, pageSize)
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]interface{}{
        "data":       plans,
        "pagination": pagination,
    })
}

func (c *PlanController) GetPlan(w http.ResponseWriter, r *http.Request) {
    plan, err := c.PlanService.GetPlan(chi.URLParam(r, "id"))
    if err != nil {
        WriteError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, plan)
}

func (c *PlanController) LastPlan(w http.ResponseWriter, r *http.Request) {
    plan, ok, err := c.PlanService.LastPlan(r.Context())
    if err != nil {
        WriteError(w, err)
        return
    }
    if !ok {
        http.Error(w, "no plan computed yet", http.StatusNotFound)
        return
    }

    writeJSON(w, http.StatusOK, plan)
}

func (c *PlanController) Export(w http.ResponseWriter, r *http.Request) {
    text, err := c.PlanService.ExportText(chi.URLParam(r, "id"))
    if err != nil {
        WriteError(w, err)
        return
    }

    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
    w.Write([]byte(text))
}

// Allocation previews a plan for the given sliders without saving it.
// Missing sliders fall back to the default position.
func (c *PlanController) Allocation(w http.ResponseWriter, r *http.Request) {
    cfg := c.PlanService.Config

    timeHours, err := floatParam(r, "time_hours")
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }
    budget, err := floatParam(r, "budget")
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    t := (cfg.MinTimeHours + cfg.MaxTimeHours) / 2
    if timeHours != nil {
        t = *timeHours
    }
    b, _ := cfg.DefaultBudget().Float64()
    if budget != nil {
        b = *budget
    }

    writeJSON(w, http.StatusOK, c.PlanService.Preview(t, b))
}

func (c *PlanController) Coupling(w http.ResponseWriter, r *http.Request) {
    timeHours, err := floatParam(r, "time_hours")
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }
    budget, err := floatParam(r, "budget")
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    coupling, err := c.PlanService.Couple(timeHours, budget)
    if err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    writeJSON(w, http.StatusOK, coupling)
}

func (c *PlanController) Goal(w http.ResponseWriter, r *http.Request) {
    win := allocator.DefaultWinNumber
    if raw := r.URL.Query().Get("win_number"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 0 {
            http.Error(w, "invalid win_number", http.StatusBadRequest)
            return
        }
        win = n
    }

    writeJSON(w, http.StatusOK, c.PlanService.Goal(win))
}

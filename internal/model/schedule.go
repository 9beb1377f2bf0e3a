// internal/model/schedule.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ScheduledActivity struct {
	Name          string          `json:"name"`
	Category      Category        `json:"category"`
	Contacts      int             `json:"contacts"`
	Cost          decimal.Decimal `json:"cost"`
	TimeHours     float64         `json:"time_hours"`
	Batches       int             `json:"batches"`
	ScriptType    string          `json:"script_type,omitempty"`
	NeedsApproval bool            `json:"needs_approval"`
	Approved      bool            `json:"approved"`
}

type WeeklyPlan struct {
	Week          int                 `json:"week"`
	StartDate     time.Time           `json:"start_date"`
	EndDate       time.Time           `json:"end_date"`
	Activities    []ScheduledActivity `json:"activities"`
	TotalContacts int                 `json:"total_contacts"`
	TotalCost     decimal.Decimal     `json:"total_cost"`
	TotalTime     float64             `json:"total_time"`
	IsCurrentWeek bool                `json:"is_current_week"`
}

// Approval marks one scheduled activity as approved.
type Approval struct {
	PlanID     string    `db:"plan_id" json:"plan_id"`
	Week       int       `db:"week" json:"week"`
	Activity   string    `db:"activity" json:"activity"`
	ApprovedAt time.Time `db:"approved_at" json:"approved_at"`
}

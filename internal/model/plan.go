// internal/model/plan.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationResult is what a single activity receives in one planning run.
type AllocationResult struct {
	Name          string          `json:"name"`
	Category      Category        `json:"category"`
	Contacts      int             `json:"contacts"`
	Cost          decimal.Decimal `json:"cost"`
	TimeHours     float64         `json:"time_hours"`
	CampaignCount int             `json:"campaign_count"`
	Unit          string          `json:"unit"`
	IsGreyedOut   bool            `json:"is_greyed_out"`
}

type Resources struct {
	TimeHoursPerWeek float64         `json:"time_hours_per_week"`
	BudgetPerWeek    decimal.Decimal `json:"budget_per_week"`
	ContactGoal      int             `json:"contact_goal"`
}

type Totals struct {
	Contacts  int             `json:"contacts"`
	Cost      decimal.Decimal `json:"cost"`
	TimeHours float64         `json:"time_hours"`
}

// Plan is the full output of the allocator plus persistence metadata.
// ID and CreatedAt are empty for previews that were never saved.
type Plan struct {
	ID         string             `db:"id" json:"id,omitempty"`
	Resources  Resources          `db:"-" json:"resources"`
	Items      []AllocationResult `db:"items" json:"items"`
	Totals     Totals             `db:"-" json:"totals"`
	ExportText string             `db:"export_text" json:"-"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt  *time.Time         `db:"updated_at" json:"updated_at,omitempty"`
}

// Item returns the allocation for the named activity.
func (p *Plan) Item(name string) (AllocationResult, bool) {
	for _, it := range p.Items {
		if it.Name == name {
			return it, true
		}
	}
	return AllocationResult{}, false
}

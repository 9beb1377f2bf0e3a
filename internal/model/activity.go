// internal/model/activity.go
package model

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryTimeIntensive  Category = "time-intensive"
	CategoryMoneyIntensive Category = "money-intensive"
	CategoryMinimal        Category = "minimal"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTimeIntensive, CategoryMoneyIntensive, CategoryMinimal:
		return true
	}
	return false
}

// ActivityDefinition is one row of the outreach activity table.
// HourCap only applies to time-intensive activities.
type ActivityDefinition struct {
	Name                  string          `yaml:"name" json:"name"`
	Category              Category        `yaml:"category" json:"category"`
	CostPerContact        decimal.Decimal `yaml:"cost_per_contact" json:"cost_per_contact"`
	TimePerContactMinutes float64         `yaml:"time_per_contact_minutes" json:"time_per_contact_minutes"`
	HourCap               float64         `yaml:"hour_cap,omitempty" json:"hour_cap,omitempty"`
	BatchSize             int             `yaml:"batch_size,omitempty" json:"batch_size,omitempty"`
	Unit                  string          `yaml:"unit" json:"unit"`
	ScriptType            string          `yaml:"script_type,omitempty" json:"script_type,omitempty"`
	Description           string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// FullGoalCost is what it costs to reach every contact in the goal.
func (a ActivityDefinition) FullGoalCost(goal int) decimal.Decimal {
	return a.CostPerContact.Mul(decimal.NewFromInt(int64(goal)))
}

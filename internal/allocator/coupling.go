// internal/allocator/coupling.go
package allocator

import (
	"math"

	"github.com/shopspring/decimal"
)

// BudgetForTime moves the budget slider when the time slider moves: more hours
// means proportionally less money across the two ranges. Whole currency units.
func BudgetForTime(cfg Config, timeHours float64) decimal.Decimal {
	t := cfg.ClampTime(timeHours)
	span := cfg.MaxTimeHours - cfg.MinTimeHours
	if span <= 0 {
		return cfg.MaxBudget().Round(0)
	}
	ratio := decimal.NewFromFloat((t - cfg.MinTimeHours) / span)
	hi, lo := cfg.MaxBudget(), cfg.MinBudget()
	return hi.Sub(ratio.Mul(hi.Sub(lo))).Round(0)
}

// TimeForBudget is the inverse of BudgetForTime, rounded to whole hours.
func TimeForBudget(cfg Config, budget float64) float64 {
	b := cfg.ClampBudget(budget)
	hi, lo := cfg.MaxBudget(), cfg.MinBudget()
	span := hi.Sub(lo)
	if span.Sign() <= 0 {
		return cfg.MaxTimeHours
	}
	ratio := b.Sub(lo).Div(span).InexactFloat64()
	return math.Round(cfg.MaxTimeHours - ratio*(cfg.MaxTimeHours-cfg.MinTimeHours))
}

// internal/allocator/config.go
package allocator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/model"
)

// Minimal activity names the allocator knows how to price.
const (
	Website     = "Website"
	SocialPosts = "Social Posts"
	VoterData   = "Voter Data"
)

// Config is everything the allocator needs besides the two slider values.
type Config struct {
	ContactGoal int
	Activities  []model.ActivityDefinition

	MinTimeHours float64
	MaxTimeHours float64

	// MaxBudget = goal * most expensive cost per contact / TargetBudgetUtilization.
	TargetBudgetUtilization float64
	MinBudgetFraction       float64

	WebsiteCost        decimal.Decimal
	WebsiteHours       float64
	VoterDataCost      decimal.Decimal
	SocialPostHours    float64
	SocialPostsBase    float64
	SocialPostsSpan    float64
	SocialReachPerPost int

	// Weekly overhead for a funded money-intensive activity.
	MoneyActivityHours float64
}

func DefaultConfig(activities []model.ActivityDefinition) Config {
	return Config{
		ContactGoal:             ContactGoal(DefaultWinNumber),
		Activities:              activities,
		MinTimeHours:            5,
		MaxTimeHours:            40,
		TargetBudgetUtilization: 0.6,
		MinBudgetFraction:       0.1,
		WebsiteCost:             decimal.NewFromInt(15),
		WebsiteHours:            0.5,
		VoterDataCost:           decimal.NewFromInt(10),
		SocialPostHours:         2,
		SocialPostsBase:         22,
		SocialPostsSpan:         44,
		MoneyActivityHours:      0.5,
	}
}

// FixedCosts is what the minimal activities consume before any outreach is funded.
func (c Config) FixedCosts() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Activities {
		if a.Category == model.CategoryMinimal {
			total = total.Add(c.minimalCost(a.Name))
		}
	}
	return total
}

func (c Config) minimalCost(name string) decimal.Decimal {
	switch name {
	case Website:
		return c.WebsiteCost
	case VoterData:
		return c.VoterDataCost
	}
	return decimal.Zero
}

func (c Config) MaxBudget() decimal.Decimal {
	maxCPC := decimal.Zero
	for _, a := range c.Activities {
		if a.Category == model.CategoryMoneyIntensive && a.CostPerContact.GreaterThan(maxCPC) {
			maxCPC = a.CostPerContact
		}
	}
	if c.TargetBudgetUtilization <= 0 {
		return maxCPC.Mul(decimal.NewFromInt(int64(c.ContactGoal)))
	}
	return maxCPC.Mul(decimal.NewFromInt(int64(c.ContactGoal))).
		Div(decimal.NewFromFloat(c.TargetBudgetUtilization))
}

func (c Config) MinBudget() decimal.Decimal {
	return c.MaxBudget().Mul(decimal.NewFromFloat(c.MinBudgetFraction))
}

// DefaultBudget is the slider starting point, the middle of the budget range.
func (c Config) DefaultBudget() decimal.Decimal {
	return c.MaxBudget().Div(decimal.NewFromInt(2))
}

// ClampTime pins t into [MinTimeHours, MaxTimeHours]. NaN becomes the minimum.
func (c Config) ClampTime(t float64) float64 {
	if math.IsNaN(t) || t < c.MinTimeHours {
		return c.MinTimeHours
	}
	if t > c.MaxTimeHours {
		return c.MaxTimeHours
	}
	return t
}

// ClampBudget pins b into [MinBudget, MaxBudget]. NaN becomes the minimum.
func (c Config) ClampBudget(b float64) decimal.Decimal {
	lo, hi := c.MinBudget(), c.MaxBudget()
	if math.IsNaN(b) || math.IsInf(b, -1) {
		return lo
	}
	if math.IsInf(b, 1) {
		return hi
	}
	d := decimal.NewFromFloat(b)
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// internal/allocator/allocator.go
package allocator

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/model"
)

// Allocate computes the weekly outreach plan for a time and money budget.
// Inputs are clamped into the configured ranges first. The result only
// depends on its arguments, so callers recompute it on every slider change.
func Allocate(cfg Config, timeHours, budget float64) model.Plan {
	t := cfg.ClampTime(timeHours)
	b := cfg.ClampBudget(budget)

	items := make([]model.AllocationResult, 0, len(cfg.Activities))
	items = append(items, allocateMinimal(cfg, t)...)
	items = append(items, allocateTime(cfg, t)...)
	items = append(items, allocateMoney(cfg, b)...)

	return model.Plan{
		Resources: model.Resources{
			TimeHoursPerWeek: t,
			BudgetPerWeek:    b,
			ContactGoal:      cfg.ContactGoal,
		},
		Items:  items,
		Totals: sumTotals(items),
	}
}

func allocateMinimal(cfg Config, timeHours float64) []model.AllocationResult {
	var out []model.AllocationResult
	for _, a := range cfg.Activities {
		if a.Category != model.CategoryMinimal {
			continue
		}
		r := model.AllocationResult{
			Name:          a.Name,
			Category:      a.Category,
			Cost:          cfg.minimalCost(a.Name),
			CampaignCount: 1,
			Unit:          a.Unit,
		}
		switch a.Name {
		case Website:
			r.TimeHours = cfg.WebsiteHours
		case SocialPosts:
			posts := socialPostCount(cfg, timeHours)
			r.TimeHours = cfg.SocialPostHours
			r.CampaignCount = posts
			r.Contacts = min(posts*cfg.SocialReachPerPost, cfg.ContactGoal)
		}
		out = append(out, r)
	}
	return out
}

// socialPostCount scales the post cadence linearly with available time.
func socialPostCount(cfg Config, timeHours float64) int {
	if cfg.MaxTimeHours <= 0 {
		return int(math.Round(cfg.SocialPostsBase))
	}
	return int(math.Round(timeHours/cfg.MaxTimeHours*cfg.SocialPostsSpan + cfg.SocialPostsBase))
}

// allocateTime hands out the weekly hours in table order. Each activity takes
// what it can from the remaining pool, bounded by its own hour cap.
func allocateTime(cfg Config, timeHours float64) []model.AllocationResult {
	var out []model.AllocationResult
	poolMinutes := timeHours * 60

	for _, a := range cfg.Activities {
		if a.Category != model.CategoryTimeIntensive {
			continue
		}
		r := model.AllocationResult{
			Name:     a.Name,
			Category: a.Category,
			Cost:     decimal.Zero,
			Unit:     a.Unit,
		}

		if a.TimePerContactMinutes <= 0 {
			r.Contacts = cfg.ContactGoal
		} else {
			maxByTime := int(math.Floor(poolMinutes / a.TimePerContactMinutes))
			r.Contacts = max(min(maxByTime, cfg.ContactGoal), 0)
			hours := float64(r.Contacts) * a.TimePerContactMinutes / 60
			if a.HourCap > 0 {
				hours = math.Min(hours, a.HourCap)
			}
			r.TimeHours = math.Min(hours, poolMinutes/60)
		}

		r.CampaignCount = campaignCount(r.Contacts, a.BatchSize)
		poolMinutes = math.Max(poolMinutes-r.TimeHours*60, 0)
		out = append(out, r)
	}
	return out
}

// allocateMoney funds activities cheapest first. An activity is greyed out
// when the activities budget cannot cover the full-goal cost of it and every
// cheaper activity; the cheapest one is only greyed out when not a single
// contact is affordable.
func allocateMoney(cfg Config, budget decimal.Decimal) []model.AllocationResult {
	var defs []model.ActivityDefinition
	for _, a := range cfg.Activities {
		if a.Category == model.CategoryMoneyIntensive {
			defs = append(defs, a)
		}
	}
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].CostPerContact.LessThan(defs[j].CostPerContact)
	})

	available := decimal.Max(budget.Sub(cfg.FixedCosts()), decimal.Zero)
	remaining := available
	cumulative := decimal.Zero
	protected := true

	out := make([]model.AllocationResult, 0, len(defs))
	for _, a := range defs {
		r := model.AllocationResult{
			Name:     a.Name,
			Category: a.Category,
			Cost:     decimal.Zero,
			Unit:     a.Unit,
		}

		if a.CostPerContact.Sign() <= 0 {
			r.Contacts = cfg.ContactGoal
			r.TimeHours = cfg.MoneyActivityHours
			r.CampaignCount = campaignCount(r.Contacts, a.BatchSize)
			out = append(out, r)
			continue
		}

		cumulative = cumulative.Add(a.FullGoalCost(cfg.ContactGoal))
		greyed := available.LessThan(cumulative)
		if protected {
			greyed = remaining.LessThan(a.CostPerContact)
			protected = false
		}
		if greyed {
			r.IsGreyedOut = true
			out = append(out, r)
			continue
		}

		maxByBudget := remaining.Div(a.CostPerContact).Floor().IntPart()
		r.Contacts = int(min(maxByBudget, int64(cfg.ContactGoal)))
		r.Cost = a.CostPerContact.Mul(decimal.NewFromInt(int64(r.Contacts)))
		r.TimeHours = cfg.MoneyActivityHours
		r.CampaignCount = campaignCount(r.Contacts, a.BatchSize)
		remaining = remaining.Sub(r.Cost)
		out = append(out, r)
	}
	return out
}

// campaignCount rounds contacts to whole batches, never below one once
// anybody is reached.
func campaignCount(contacts, batchSize int) int {
	if contacts <= 0 {
		return 0
	}
	if batchSize <= 0 {
		return 1
	}
	return max(1, int(math.Round(float64(contacts)/float64(batchSize))))
}

func sumTotals(items []model.AllocationResult) model.Totals {
	t := model.Totals{Cost: decimal.Zero}
	for _, it := range items {
		t.Contacts += it.Contacts
		t.Cost = t.Cost.Add(it.Cost)
		t.TimeHours += it.TimeHours
	}
	return t
}

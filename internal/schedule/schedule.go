// internal/schedule/schedule.go
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	appErrors "github.com/unclebandit/campaign-planner/internal/errors"
	"github.com/unclebandit/campaign-planner/internal/model"
)

const DefaultWeeks = 11

// Build lays a plan out over consecutive 7-day weeks starting at start.
// Time-intensive activities run every week at their weekly hours. Posts and
// paid batches are spread evenly across the weeks.
func Build(plan model.Plan, defs []model.ActivityDefinition, weeks int, start, now time.Time) []model.WeeklyPlan {
	if weeks < 1 {
		weeks = 1
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	byName := make(map[string]model.ActivityDefinition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	out := make([]model.WeeklyPlan, weeks)
	for i := range out {
		ws := start.AddDate(0, 0, 7*i)
		out[i] = model.WeeklyPlan{
			Week:          i + 1,
			StartDate:     ws,
			EndDate:       ws.AddDate(0, 0, 6),
			TotalCost:     decimal.Zero,
			IsCurrentWeek: !now.Before(ws) && now.Before(ws.AddDate(0, 0, 7)),
		}
	}

	for _, it := range plan.Items {
		if it.IsGreyedOut {
			continue
		}
		def := byName[it.Name]
		entry := model.ScheduledActivity{
			Name:          it.Name,
			Category:      it.Category,
			Cost:          decimal.Zero,
			ScriptType:    def.ScriptType,
			NeedsApproval: def.ScriptType != "",
		}

		switch {
		case it.Name == allocator.Website:
			entry.Cost = it.Cost
			entry.TimeHours = it.TimeHours
			entry.Batches = 1
			entry.Approved = true
			out[0].Activities = append(out[0].Activities, entry)

		case it.Category == model.CategoryMinimal && it.Name != allocator.SocialPosts:
			entry.Cost = it.Cost
			entry.TimeHours = it.TimeHours
			entry.Batches = it.CampaignCount
			out[0].Activities = append(out[0].Activities, entry)

		case it.Category == model.CategoryTimeIntensive:
			if it.Contacts <= 0 {
				continue
			}
			for i := range out {
				e := entry
				e.Contacts = it.Contacts
				e.TimeHours = it.TimeHours
				e.Batches = it.CampaignCount
				out[i].Activities = append(out[i].Activities, e)
			}

		default:
			// social posts and paid activities go out in batches
			if it.CampaignCount <= 0 {
				continue
			}
			perWeek := placeBatches(it.CampaignCount, weeks)
			perBatch := spread(it.Contacts, it.CampaignCount)
			next := 0
			for i, n := range perWeek {
				if n == 0 {
					continue
				}
				e := entry
				e.Batches = n
				e.TimeHours = it.TimeHours
				for k := 0; k < n; k++ {
					e.Contacts += perBatch[next]
					next++
				}
				e.Cost = def.CostPerContact.Mul(decimal.NewFromInt(int64(e.Contacts)))
				out[i].Activities = append(out[i].Activities, e)
			}
		}
	}

	for i := range out {
		w := &out[i]
		for _, a := range w.Activities {
			w.TotalContacts += a.Contacts
			w.TotalCost = w.TotalCost.Add(a.Cost)
			w.TotalTime += a.TimeHours
		}
	}
	return out
}

// placeBatches returns how many of n batches land in each week. Batch k goes
// to week floor((2k+1)*weeks / 2n), which centres the batches in their slots.
func placeBatches(n, weeks int) []int {
	out := make([]int, weeks)
	for k := 0; k < n; k++ {
		w := (2*k + 1) * weeks / (2 * n)
		out[w]++
	}
	return out
}

// spread splits total into n near-equal parts, larger parts first.
func spread(total, n int) []int {
	out := make([]int, n)
	if n == 0 {
		return out
	}
	base, rem := total/n, total%n
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// ApplyApprovals marks the approved activities in the schedule.
func ApplyApprovals(weeks []model.WeeklyPlan, approvals []model.Approval) {
	for _, a := range approvals {
		if a.Week < 1 || a.Week > len(weeks) {
			continue
		}
		acts := weeks[a.Week-1].Activities
		for i := range acts {
			if acts[i].Name == a.Activity && acts[i].NeedsApproval {
				acts[i].Approved = true
			}
		}
	}
}

// Find checks that an activity runs in the given week and needs approval.
func Find(weeks []model.WeeklyPlan, week int, activity string) (*model.ScheduledActivity, error) {
	if week < 1 || week > len(weeks) {
		return nil, appErrors.NewWeekOutOfRange(week, len(weeks))
	}
	acts := weeks[week-1].Activities
	for i := range acts {
		if acts[i].Name == activity && acts[i].NeedsApproval {
			return &acts[i], nil
		}
	}
	return nil, appErrors.NewActivityNotScheduled(week, activity)
}

// PendingApprovals counts scheduled activities still waiting for sign-off.
func PendingApprovals(weeks []model.WeeklyPlan) int {
	n := 0
	for _, w := range weeks {
		for _, a := range w.Activities {
			if a.NeedsApproval && !a.Approved {
				n++
			}
		}
	}
	return n
}

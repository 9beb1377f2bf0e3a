// internal/export/outline.go
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/model"
)

const contentGeneration = "We'll automatically generate personalized content for every activity in your campaign plan " +
	"based on your campaign identity and target audience. You can then review, edit, and approve the content we generate. " +
	"Then pay for texts, robocalls, and digital ads on a campaign-by-campaign basis when you're ready to launch them."

var bullets = map[string][]string{
	allocator.VoterData:   {"Voter contact database", "Ready-made voter segments", "Voting history and likelihood"},
	allocator.Website:     {"Homepage with bio & platform", "Issues & policy positions", "Contact & volunteer forms"},
	allocator.SocialPosts: {"Campaign announcements", "Policy highlights", "Behind-the-scenes content", "Community engagement posts"},
	"Canvassing":          {"Door-to-door conversations", "Voter ID & persuasion", "Vote commitment tracking"},
	"Events":              {"Community meet & greets", "Town halls & forums", "House parties"},
	"Robocalls":           {"Introduction messages", "Policy announcements", "Election reminders"},
	"Digital Ads":         {"Facebook & Instagram ads", "Google search ads", "YouTube video ads"},
}

// Outline renders a plan as the plain-text "download plan" document.
func Outline(plan model.Plan, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("CAMPAIGN PLAN OUTLINE\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("1/2/2006"))

	b.WriteString("RESOURCES:\n")
	fmt.Fprintf(&b, "Budget: $%s\n", money(plan.Resources.BudgetPerWeek))
	fmt.Fprintf(&b, "Time Available: %s hours/week\n\n", hours(plan.Resources.TimeHoursPerWeek))

	b.WriteString("CAMPAIGN ACTIVITIES:\n\n")

	if it, ok := plan.Item(allocator.VoterData); ok {
		fmt.Fprintf(&b, "Voter Data - $%s/mo, 0h\n", money(it.Cost))
		writeBullets(&b, bullets[allocator.VoterData])
	}
	if it, ok := plan.Item(allocator.Website); ok {
		fmt.Fprintf(&b, "Website - $%s, <1hr\n", money(it.Cost))
		writeBullets(&b, bullets[allocator.Website])
	}
	if it, ok := plan.Item(allocator.SocialPosts); ok {
		fmt.Fprintf(&b, "Social Media Posts - $%s, %sh/week\n", money(it.Cost), hours(it.TimeHours))
		fmt.Fprintf(&b, "• %d posts total\n", it.CampaignCount)
		writeBullets(&b, bullets[allocator.SocialPosts])
	}

	for _, it := range plan.Items {
		if it.Contacts <= 0 || it.Category == model.CategoryMinimal {
			continue
		}
		if it.Name == "Texting" {
			fmt.Fprintf(&b, "Text Campaigns - $%s, <1h/week\n", it.Cost.Round(0))
			fmt.Fprintf(&b, "• %d %s\n", it.CampaignCount, UnitLabel(it.CampaignCount, it.Unit))
			writeBullets(&b, TextTypes(it.Contacts))
			continue
		}

		fmt.Fprintf(&b, "%s - $%s, %s\n", it.Name, it.Cost.Round(0), timeLabel(it))
		fmt.Fprintf(&b, "• %d %s\n", it.CampaignCount, UnitLabel(it.CampaignCount, it.Unit))
		writeBullets(&b, bullets[it.Name])
	}

	b.WriteString("\nCONTENT GENERATION:\n")
	b.WriteString(contentGeneration + "\n")

	b.WriteString("\nTOTALS:\n")
	fmt.Fprintf(&b, "Total Voter Contacts: %s\n", humanize.Comma(int64(plan.Totals.Contacts)))
	fmt.Fprintf(&b, "Total Cost: $%s\n", money(plan.Totals.Cost))
	fmt.Fprintf(&b, "Total Time: %sh/week\n", hours(plan.Totals.TimeHours))

	return b.String()
}

// TextTypes picks the text messages worth sending for a texting volume.
func TextTypes(contacts int) []string {
	switch {
	case contacts >= 400:
		return []string{"Introduction Text", "Persuasion Text", "Early Voting Text", "GOTV Text"}
	case contacts >= 300:
		return []string{"Introduction Text", "Persuasion Text", "GOTV Text"}
	case contacts >= 200:
		return []string{"Introduction Text", "GOTV Text"}
	case contacts > 0:
		return []string{"Introduction Text"}
	}
	return nil
}

// UnitLabel drops the plural for a single batch: "1 campaign", "2 campaigns".
func UnitLabel(count int, unit string) string {
	if count == 1 {
		return strings.TrimSuffix(unit, "s")
	}
	return unit
}

func timeLabel(it model.AllocationResult) string {
	if it.Category == model.CategoryTimeIntensive {
		return hours(it.TimeHours) + "h/week"
	}
	return "<1h/week"
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, l := range lines {
		fmt.Fprintf(b, "• %s\n", l)
	}
	b.WriteString("\n")
}

func money(d decimal.Decimal) string {
	return humanize.Commaf(d.Round(2).InexactFloat64())
}

func hours(h float64) string {
	return decimal.NewFromFloat(h).Round(1).String()
}

package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/catalog"
	"github.com/unclebandit/campaign-planner/internal/export"
)

func TestOutline(t *testing.T) {
	cfg := allocator.DefaultConfig(catalog.Default())
	plan := allocator.Allocate(cfg, 20, 1562.5)
	generated := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	out := export.Outline(plan, generated)

	for _, want := range []string{
		"CAMPAIGN PLAN OUTLINE\nGenerated: 10/19/2026\n",
		"RESOURCES:\nBudget: $1,562.5\nTime Available: 20 hours/week\n",
		"Voter Data - $10/mo, 0h\n",
		"Website - $15, <1hr\n",
		"Social Media Posts - $0, 2h/week\n• 44 posts total\n",
		"Canvassing - $0, 8h/week\n• 1 campaign\n• Door-to-door conversations\n",
		"Events - $0, 4h/week\n• 1 event\n",
		"Text Campaigns - $313, <1h/week\n• 8 campaigns\n• Introduction Text\n",
		"• GOTV Text\n",
		"Robocalls - $625, <1h/week\n• 8 campaigns\n",
		"Total Voter Contacts: 12,656\n",
		"Total Cost: $962.5\n",
		"Total Time: 15.5h/week\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected outline to contain %q\n---\n%s", want, out)
		}
	}

	if strings.Contains(out, "Digital Ads -") {
		t.Errorf("greyed out activity should not be listed:\n%s", out)
	}

	sections := []string{"RESOURCES:", "CAMPAIGN ACTIVITIES:", "CONTENT GENERATION:", "TOTALS:"}
	last := -1
	for _, s := range sections {
		i := strings.Index(out, s)
		if i <= last {
			t.Errorf("section %s out of order", s)
		}
		last = i
	}
}

func TestTextTypes(t *testing.T) {
	cases := map[int]int{0: 0, 150: 1, 200: 2, 350: 3, 400: 4, 6250: 4}
	for contacts, want := range cases {
		if got := len(export.TextTypes(contacts)); got != want {
			t.Errorf("TextTypes(%d): expected %d types, got %d", contacts, want, got)
		}
	}
}

func TestUnitLabel(t *testing.T) {
	if got := export.UnitLabel(1, "campaigns"); got != "campaign" {
		t.Errorf("expected singular, got %q", got)
	}
	if got := export.UnitLabel(3, "events"); got != "events" {
		t.Errorf("expected plural, got %q", got)
	}
	if got := export.UnitLabel(1, "website"); got != "website" {
		t.Errorf("expected unchanged, got %q", got)
	}
}

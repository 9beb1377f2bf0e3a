// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/unclebandit/campaign-planner/internal/model"
)

type file struct {
	Activities []model.ActivityDefinition `yaml:"activities"`
}

// Default is the built-in outreach activity table.
func Default() []model.ActivityDefinition {
	return []model.ActivityDefinition{
		{Name: "Website", Category: model.CategoryMinimal, CostPerContact: decimal.Zero, Unit: "website", ScriptType: "website-content", Description: "Professional campaign website"},
		{Name: "Social Posts", Category: model.CategoryMinimal, CostPerContact: decimal.Zero, Unit: "posts", ScriptType: "social-content", Description: "Regular social media content"},
		{Name: "Voter Data", Category: model.CategoryMinimal, CostPerContact: decimal.Zero, Unit: "database", Description: "Voter insights, segments & contact information"},
		{Name: "Canvassing", Category: model.CategoryTimeIntensive, CostPerContact: decimal.Zero, TimePerContactMinutes: 8, HourCap: 8, BatchSize: 250, Unit: "campaigns", ScriptType: "canvassing-script", Description: "Door-to-door visits with volunteers"},
		{Name: "Events", Category: model.CategoryTimeIntensive, CostPerContact: decimal.Zero, TimePerContactMinutes: 120, HourCap: 4, BatchSize: 30, Unit: "events", ScriptType: "event-materials", Description: "Community events and meet & greets"},
		{Name: "Texting", Category: model.CategoryMoneyIntensive, CostPerContact: decimal.RequireFromString("0.05"), TimePerContactMinutes: 0.1, BatchSize: 750, Unit: "campaigns", ScriptType: "text-script", Description: "Personalized text messages to voters"},
		{Name: "Robocalls", Category: model.CategoryMoneyIntensive, CostPerContact: decimal.RequireFromString("0.10"), TimePerContactMinutes: 0.1, BatchSize: 750, Unit: "campaigns", ScriptType: "robocall-script", Description: "Automated phone calls with your message"},
		{Name: "Digital Ads", Category: model.CategoryMoneyIntensive, CostPerContact: decimal.RequireFromString("0.30"), TimePerContactMinutes: 0.1, BatchSize: 300, Unit: "campaigns", ScriptType: "digital-ad-copy", Description: "Online advertising and social media ads"},
	}
}

// Load reads an activity table from a YAML file. An empty path returns Default.
func Load(path string) ([]model.ActivityDefinition, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]model.ActivityDefinition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(f.Activities); err != nil {
		return nil, err
	}
	return f.Activities, nil
}

// Validate reports every problem in the table at once.
func Validate(defs []model.ActivityDefinition) error {
	var result *multierror.Error
	if len(defs) == 0 {
		return multierror.Append(result, fmt.Errorf("catalog has no activities"))
	}

	seen := map[string]bool{}
	for i, a := range defs {
		if a.Name == "" {
			result = multierror.Append(result, fmt.Errorf("activity #%d: name is required", i+1))
		} else if seen[a.Name] {
			result = multierror.Append(result, fmt.Errorf("activity %q: duplicate name", a.Name))
		}
		seen[a.Name] = true

		if !a.Category.Valid() {
			result = multierror.Append(result, fmt.Errorf("activity %q: unknown category %q", a.Name, a.Category))
		}
		if a.CostPerContact.IsNegative() {
			result = multierror.Append(result, fmt.Errorf("activity %q: negative cost per contact", a.Name))
		}
		if a.TimePerContactMinutes < 0 {
			result = multierror.Append(result, fmt.Errorf("activity %q: negative time per contact", a.Name))
		}
		if a.HourCap < 0 {
			result = multierror.Append(result, fmt.Errorf("activity %q: negative hour cap", a.Name))
		}
		if a.Category != model.CategoryMinimal && a.BatchSize <= 0 {
			result = multierror.Append(result, fmt.Errorf("activity %q: batch size must be positive", a.Name))
		}
	}
	return result.ErrorOrNil()
}

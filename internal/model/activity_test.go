package model_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/campaign-planner/internal/model"
)

func TestFullGoalCost(t *testing.T) {
	ads := model.ActivityDefinition{Name: "Digital Ads", CostPerContact: decimal.RequireFromString("0.30")}

	if got := ads.FullGoalCost(6250); !got.Equal(decimal.NewFromInt(1875)) {
		t.Errorf("expected 1875, got %s", got)
	}
	if got := ads.FullGoalCost(0); !got.IsZero() {
		t.Errorf("expected zero for empty goal, got %s", got)
	}
}

package service_test

import (
	"context"
	"testing"

	"github.com/unclebandit/campaign-planner/internal/service"
)

func TestWorker(t *testing.T) {
	svc, repo, _ := newService()
	plan, _ := svc.CreatePlan(context.Background(), 20, 1562.5)

	jobChan := make(chan service.ExportJob, 2)
	done := make(chan error, 2)
	jobChan <- service.ExportJob{PlanID: plan.ID, Done: done}
	jobChan <- service.ExportJob{PlanID: "missing", Done: done}
	close(jobChan)

	worker := service.NewWorker(svc, jobChan)
	go worker.Start()

	if err := <-done; err != nil {
		t.Fatalf("expected first job to succeed, got %v", err)
	}
	if err := <-done; err == nil {
		t.Error("expected missing plan to fail")
	}

	stored, _ := repo.GetByID(plan.ID)
	if stored.ExportText == "" {
		t.Error("expected export stored")
	}
}

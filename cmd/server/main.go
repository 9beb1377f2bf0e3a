// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/catalog"
	"github.com/unclebandit/campaign-planner/internal/config"
	"github.com/unclebandit/campaign-planner/internal/controller"
	"github.com/unclebandit/campaign-planner/internal/db"
	"github.com/unclebandit/campaign-planner/internal/handler"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
	"github.com/unclebandit/campaign-planner/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	activities, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load activity catalog: %v", err)
	}
	allocCfg := allocator.DefaultConfig(activities)
	allocCfg.ContactGoal = allocator.ContactGoal(cfg.WinNumber)

	// Init DB
	db.Init(cfg)

	planRepo := &repository.PlanRepository{DB: db.DB}
	kvRepo := &repository.KVRepository{DB: db.DB}

	planService := &service.PlanService{
		Config:        allocCfg,
		PlanRepo:      planRepo,
		Store:         kvRepo,
		ScheduleWeeks: cfg.ScheduleWeeks,
		ScheduleStart: cfg.ScheduleStart,
	}

	if cfg.AMQPURL != "" {
		amqpQueue, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Fatal(err)
		}
		defer amqpQueue.Close()
		planService.Queue = amqpQueue
		planService.ExportTopic = cfg.AMQPQueue
		log.Println("📮 Publishing plan exports to RabbitMQ")
	} else {
		q := queue.NewInMemoryQueue()
		if err := queue.StartPlanExportSubscriber(q, planService); err != nil {
			log.Fatal(err)
		}
		planService.Queue = q
		log.Println("📮 Rendering plan exports in-process")
	}

	planController := &controller.PlanController{
		PlanService: planService,
	}
	scheduleHandler := handler.NewScheduleHandler(planService)

	r := chi.NewRouter()

	// Plan routes
	r.Post("/plans", planController.CreatePlan)
	r.Get("/plans", planController.ListPlans)
	r.Get("/plans/last", planController.LastPlan)
	r.Get("/plans/{id}", planController.GetPlan)
	r.Get("/plans/{id}/export", planController.Export)
	r.Get("/plans/{id}/schedule", scheduleHandler.GetScheduleHandler)
	r.Post("/plans/{id}/schedule/approve", scheduleHandler.ApproveHandler)

	// Stateless calculators
	r.Get("/allocation", planController.Allocation)
	r.Get("/coupling", planController.Coupling)
	r.Get("/goal", planController.Goal)

	log.Println("🚀 Server running on", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

package main

import (
	"log"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/catalog"
	"github.com/unclebandit/campaign-planner/internal/config"
	"github.com/unclebandit/campaign-planner/internal/db"
	"github.com/unclebandit/campaign-planner/internal/queue"
	"github.com/unclebandit/campaign-planner/internal/repository"
	"github.com/unclebandit/campaign-planner/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the export worker")
	}

	activities, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load activity catalog: %v", err)
	}
	allocCfg := allocator.DefaultConfig(activities)
	allocCfg.ContactGoal = allocator.ContactGoal(cfg.WinNumber)

	db.Init(cfg)

	planService := &service.PlanService{
		Config:   allocCfg,
		PlanRepo: &repository.PlanRepository{DB: db.DB},
	}

	// Connect to RabbitMQ
	q, err := queue.DialAMQP(cfg.AMQPURL)
	if err != nil {
		log.Fatal(err)
	}
	defer q.Close()

	size := cfg.WorkerSize
	if size < 1 {
		size = 1
	}
	q.Prefetch = size

	jobs := make(chan service.ExportJob)
	for i := 0; i < size; i++ {
		go service.NewWorker(planService, jobs).Start()
	}

	// Hand each delivery to the pool and wait for its result so the queue can retry.
	err = q.Subscribe(cfg.AMQPQueue, func(payload any) error {
		planID, _ := payload.(string)
		done := make(chan error, 1)
		jobs <- service.ExportJob{PlanID: planID, Done: done}
		return <-done
	})
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	forever := make(chan bool)
	log.Printf("Worker running with %d renderers, waiting for messages on %s...\n", size, cfg.AMQPQueue)
	<-forever
}

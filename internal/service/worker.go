package service

import (
	"log"
)

// ExportRenderer is what the worker needs from the plan service
type ExportRenderer interface {
	RenderExport(planID string) error
}

// ExportJob asks for one plan outline; Done receives the outcome
type ExportJob struct {
	PlanID string
	Done   chan<- error
}

// Worker processes export jobs
type Worker struct {
	Renderer ExportRenderer
	JobChan  <-chan ExportJob
}

// Constructor
func NewWorker(renderer ExportRenderer, jobChan <-chan ExportJob) *Worker {
	return &Worker{
		Renderer: renderer,
		JobChan:  jobChan,
	}
}

// Start begins processing jobs until the channel is closed
func (w *Worker) Start() {
	for job := range w.JobChan {
		err := w.Renderer.RenderExport(job.PlanID)
		if err != nil {
			log.Println("Failed to render export:", job.PlanID, err)
		}
		if job.Done != nil {
			job.Done <- err
		}
	}
}

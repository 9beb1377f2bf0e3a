package queue

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// PlanExportsTopic carries IDs of saved plans whose outline still needs rendering.
const PlanExportsTopic = "plan_exports"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue runs handlers in-process with retry
type InMemoryQueue struct {
	mu         sync.Mutex
	handlers   map[string][]func(payload any) error
	maxRetries int
	backoff    time.Duration
	wg         sync.WaitGroup
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}
}

// WithBackoff sets the base delay between retries
func (q *InMemoryQueue) WithBackoff(d time.Duration) *InMemoryQueue {
	q.backoff = d
	return q
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{
			Payload:    payload,
			RetryCount: 0,
			MaxRetries: q.maxRetries,
		}
		q.wg.Add(1)
		go q.processJob(handler, job)
	}

	return nil
}

// Wait blocks until every published job has finished or given up
func (q *InMemoryQueue) Wait() {
	q.wg.Wait()
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	defer q.wg.Done()
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			log.Printf("Job processed successfully: %+v\n", job.Payload)
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Linear backoff before retry
		time.Sleep(time.Duration(job.RetryCount) * q.backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Exporter renders and stores the outline for a saved plan.
type Exporter interface {
	RenderExport(planID string) error
}

func StartPlanExportSubscriber(q Queue, exporter Exporter) error {
	err := q.Subscribe(PlanExportsTopic, func(payload any) error {
		planID, ok := payload.(string)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected plan ID string")
			return nil // no retry
		}

		log.Println("📩 Rendering export for plan:", planID)

		if err := exporter.RenderExport(planID); err != nil {
			log.Println("⚠️ Failed to render export:", err)
			return err // triggers retry in queue
		}

		log.Println("✅ Export stored for plan:", planID)
		return nil
	})
	if err != nil {
		log.Println("⚠️ Failed to start subscriber for plan_exports:", err)
	}
	return err
}

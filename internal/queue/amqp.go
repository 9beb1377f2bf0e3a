package queue

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

const retryHeader = "x-retry-count"

// PlanJob is the wire format of a plan_exports message.
type PlanJob struct {
	PlanID string `json:"plan_id"`
}

// AMQPQueue publishes and consumes plan jobs through RabbitMQ.
type AMQPQueue struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	MaxRetries int
	Prefetch   int
}

func DialAMQP(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	return &AMQPQueue{conn: conn, ch: ch, MaxRetries: 3, Prefetch: 1}, nil
}

func (q *AMQPQueue) declare(topic string) error {
	_, err := q.ch.QueueDeclare(
		topic, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	return err
}

// Publish sends a plan ID; payload must be a string.
func (q *AMQPQueue) Publish(topic string, payload any) error {
	planID, ok := payload.(string)
	if !ok {
		return fmt.Errorf("unsupported payload %T for topic %s", payload, topic)
	}
	return q.publish(topic, PlanJob{PlanID: planID}, 0)
}

func (q *AMQPQueue) publish(topic string, job PlanJob, retries int) error {
	if err := q.declare(topic); err != nil {
		return err
	}
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{retryHeader: int32(retries)},
			Body:         body,
		},
	)
}

// Subscribe consumes topic and calls handler with the plan ID of each message.
// Failed messages are republished with a bumped retry header until MaxRetries.
func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	if err := q.declare(topic); err != nil {
		return err
	}
	if err := q.ch.Qos(q.Prefetch, 0, false); err != nil {
		return err
	}
	msgs, err := q.ch.Consume(
		topic,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for d := range msgs {
			go q.handle(topic, d, handler)
		}
		log.Println("⚠️ Consumer channel closed for", topic)
	}()
	return nil
}

func (q *AMQPQueue) handle(topic string, d amqp.Delivery, handler func(payload any) error) {
	var job PlanJob
	if err := json.Unmarshal(d.Body, &job); err != nil || job.PlanID == "" {
		log.Println("Invalid job:", string(d.Body))
		d.Ack(false)
		return
	}

	if err := handler(job.PlanID); err != nil {
		retries := RetryCount(d.Headers)
		if retries < q.MaxRetries {
			if perr := q.publish(topic, job, retries+1); perr != nil {
				log.Println("⚠️ Failed to requeue job:", perr)
				d.Nack(false, true)
				return
			}
		} else {
			log.Printf("Job permanently failed after %d attempts: %s\n", q.MaxRetries, job.PlanID)
		}
	}
	d.Ack(false)
}

// RetryCount reads the retry header whatever integer type the broker decoded it as.
func RetryCount(headers amqp.Table) int {
	switch v := headers[retryHeader].(type) {
	case int:
		return v
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	}
	return 0
}

func (q *AMQPQueue) Close() error {
	if err := q.ch.Close(); err != nil {
		q.conn.Close()
		return err
	}
	return q.conn.Close()
}

var (
	_ Queue = (*InMemoryQueue)(nil)
	_ Queue = (*AMQPQueue)(nil)
)

package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends audit events to RabbitMQ.  Each publish dials its own
// connection; mutation traffic on this API is far too low to justify a
// pooled channel.
type Publisher struct {
	url string
}

// NewPublisher builds a Publisher for the given AMQP URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// Publish marshals the event and delivers it to the club.audit queue as a
// persistent message.  Errors are logged and returned so callers can
// ignore them; a nil Publisher swallows the event entirely.
func (p *Publisher) Publish(ctx context.Context, ev ClubAuditEvent) error {
	if p == nil {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("audit: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("audit: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare so publisher and consumer can start in any order.
	if _, err := ch.QueueDeclare(auditQueueName, true, false, false, false, nil); err != nil {
		log.Printf("audit: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("audit: marshal failed: %v", err)
		return err
	}
	err = ch.PublishWithContext(ctx, "", auditQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("audit: publish failed: %v", err)
	}
	return err
}

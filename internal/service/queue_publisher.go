// Package queue_publisher publishes domain events to RabbitMQ. Errors are
// logged and returned so callers can ignore failures without interrupting
// the request flow — an event is never worth failing a star for.
package queue_publisher

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	q "github.com/joypop/joypop-api/internal/queue"
)

// PublishStarCreated publishes to the star.created queue.
func PublishStarCreated(ctx context.Context, log zerolog.Logger, ev q.StarCreatedEvent) error {
	return publish(ctx, log, q.StarCreatedQueue, ev)
}

// PublishJarSaved publishes to the jar.saved queue.
func PublishJarSaved(ctx context.Context, log zerolog.Logger, ev q.JarSavedEvent) error {
	return publish(ctx, log, q.JarSavedQueue, ev)
}

func publish(ctx context.Context, log zerolog.Logger, queueName string, event any) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Warn().Err(err).Str("queue", queueName).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}

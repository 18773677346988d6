package events

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"
)

// Bus publishes events to a RabbitMQ fanout exchange so other processes (the
// web frontend's consumer in particular) see the same stream as in-process
// subscribers.
type Bus struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
}

// NewBus connects to RabbitMQ and declares the durable fanout exchange.
func NewBus(connectionString, exchange string) (*Bus, error) {
	conn, err := amqp.Dial(connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"fanout", // kind
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Bus{connection: conn, channel: ch, exchange: exchange}, nil
}

// Publish serializes the event and publishes it with its type in a header so
// consumers can filter without deserializing.
func (b *Bus) Publish(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = b.channel.Publish(
		b.exchange, // exchange
		"",         // routing key (fanout ignores it)
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Headers:     amqp.Table{"event_type": event.Type},
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the channel and connection.
func (b *Bus) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.connection != nil {
		b.connection.Close()
	}
	return nil
}

// Consume binds a durable queue to the exchange and forwards every delivery
// into the local manager. Blocks until the delivery channel closes; run it in
// its own goroutine.
func (b *Bus) Consume(queueName string, manager *Manager) error {
	q, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := b.channel.QueueBind(q.Name, "", b.exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := b.channel.Consume(
		q.Name, // queue
		"",     // consumer tag
		true,   // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	for d := range deliveries {
		var event Event
		if err := json.Unmarshal(d.Body, &event); err != nil {
			slog.Warn("Invalid event on bus, skipping", "error", err)
			continue
		}
		manager.Deliver(event)
	}
	return nil
}

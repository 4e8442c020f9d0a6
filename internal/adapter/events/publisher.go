package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"recharge-gateway/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const routingOrderCompleted = "order.completed"

// Publisher implements ports.EventPublisher over a RabbitMQ topic exchange.
// Events go out with persistent delivery; consumers bind their own queues.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex // amqp channels are not safe for concurrent publish
	log      zerolog.Logger
}

// NewPublisher connects to the broker and declares the exchange.
func NewPublisher(url, exchange string, log zerolog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	log.Info().Str("exchange", exchange).Msg("AMQP publisher connected")
	return &Publisher{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// PublishOrderCompleted emits one order.completed event. Callers invoke this
// after the completing transaction commits and only log failures.
func (p *Publisher) PublishOrderCompleted(ctx context.Context, ev domain.OrderCompletedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, routingOrderCompleted, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.OrderID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingOrderCompleted, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

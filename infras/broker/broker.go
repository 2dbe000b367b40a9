package broker

//go:generate go run go.uber.org/mock/mockgen -source=./broker.go -destination=./mocks/broker_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pgms/config"
	"pgms/infras/otel"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName      = "broker"
	otelRoutingKeyAttr = "messaging.routing_key"
	exchangeKind       = "topic"
	contentTypeJSON    = "application/json"
)

// Routing keys of the published domain events.
const (
	EventAdminRegistered = "admin.registered"
	EventAdminDeleted    = "admin.deleted"
	EventPaymentRecorded = "payment.recorded"

	EventSubscriptionActivated = "subscription.activated"
	EventTicketResponded       = "ticket.responded"
	EventAppointmentConfirmed  = "appointment.confirmed"
)

// Publisher sends domain events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// New returns a Kafka or RabbitMQ publisher, Kafka taking precedence, or one
// that drops every event when neither broker is enabled.
func New(cfg *config.Config, otl otel.Otel) Publisher {
	if cfg.External.Kafka.Enable {
		return newKafkaPublisher(cfg, otl)
	}

	if !cfg.External.RabbitMQ.Enable {
		log.Info().Msg("No message broker enabled, domain events will not be published")

		return noopPublisher{}
	}

	return &rabbitPublisher{
		url:      cfg.External.RabbitMQ.URL,
		exchange: cfg.External.RabbitMQ.Exchange,
		otel:     otl,
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}

type rabbitPublisher struct {
	url      string
	exchange string
	otel     otel.Otel

	mu   sync.Mutex
	conn *amqp.Connection
}

// connection dials lazily and redials once the previous connection closed.
func (p *rabbitPublisher) connection() (*amqp.Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	p.conn = conn

	return conn, nil
}

func (p *rabbitPublisher) Publish(ctx context.Context, routingKey string, event any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, otelScopeName, otelScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelRoutingKeyAttr, routingKey)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", routingKey, err)
	}

	conn, err := p.connection()
	if err != nil {
		return err
	}

	// Channels are not safe for concurrent use, so each publish opens its own.
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err = ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", p.exchange, err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", routingKey, err)
	}

	log.Debug().Str("routing_key", routingKey).Msg("event published")

	return nil
}

func (p *rabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close rabbitmq connection: %w", err)
	}

	return nil
}

// PublishAsync publishes in the background. Failures are logged and dropped.
func PublishAsync(ctx context.Context, publisher Publisher, routingKey string, event any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := publisher.Publish(c, routingKey, event); err != nil {
			log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
		}
	}()
}

package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pgms/config"
	"pgms/infras/otel"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const headerRoutingKey = "routing_key"

type kafkaPublisher struct {
	otel   otel.Otel
	writer *kafkaGo.Writer
}

// All events share one topic; the routing key becomes the message key and a
// header, so consumers can filter the way they would on a topic exchange.
func newKafkaPublisher(cfg *config.Config, otl otel.Otel) *kafkaPublisher {
	kafkaConfig := cfg.External.Kafka

	transport := &kafkaGo.Transport{}
	if kafkaConfig.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaConfig.SASL.Username,
			Password: kafkaConfig.SASL.Password,
		}
	}

	log.Info().Strs("brokers", kafkaConfig.Brokers).Str("topic", kafkaConfig.Topic).Msg("Kafka publisher initialized")

	return &kafkaPublisher{
		otel: otl,
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(kafkaConfig.Brokers...),
			Topic:                  kafkaConfig.Topic,
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func toKafkaMessage(routingKey string, event any) (kafkaGo.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event %s: %w", routingKey, err)
	}

	return kafkaGo.Message{
		Key:   []byte(routingKey),
		Value: value,
		Headers: []kafkaGo.Header{
			{Key: headerRoutingKey, Value: []byte(routingKey)},
			{Key: "content_type", Value: []byte(contentTypeJSON)},
		},
		Time: time.Now().UTC(),
	}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, routingKey string, event any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, otelScopeName, otelScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelRoutingKeyAttr, routingKey)

	message, err := toKafkaMessage(routingKey, event)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to send event %s to kafka: %w", routingKey, err)
	}

	log.Debug().Str("routing_key", routingKey).Msg("event published")

	return nil
}

func (p *kafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}

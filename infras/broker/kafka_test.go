package broker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/config"
	"pgms/infras/otel/mocks"
)

func TestToKafkaMessage(t *testing.T) {
	message, err := toKafkaMessage(EventPaymentRecorded, map[string]any{"payment_id": 7})
	require.NoError(t, err)

	assert.Equal(t, EventPaymentRecorded, string(message.Key))

	var body map[string]any
	require.NoError(t, json.Unmarshal(message.Value, &body))
	assert.EqualValues(t, 7, body["payment_id"])

	assert.Equal(t, headerRoutingKey, message.Headers[0].Key)
	assert.Equal(t, EventPaymentRecorded, string(message.Headers[0].Value))
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	_, err := toKafkaMessage(EventAdminDeleted, make(chan int))

	assert.Error(t, err)
}

func TestNew_KafkaTakesPrecedence(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Kafka.Enable = true
	cfg.External.Kafka.Brokers = []string{"localhost:9092"}
	cfg.External.Kafka.Topic = "pgms.events"
	cfg.External.RabbitMQ.Enable = true

	publisher := New(cfg, mocks.NewOtel())

	kafka, ok := publisher.(*kafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "pgms.events", kafka.writer.Topic)
	assert.NoError(t, publisher.Close())
}

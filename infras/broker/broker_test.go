package broker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pgms/config"
	"pgms/infras/broker"
	brokerMocks "pgms/infras/broker/mocks"
	"pgms/infras/otel/mocks"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	cfg := &config.Config{}

	publisher := broker.New(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), broker.EventPaymentRecorded, map[string]any{"id": 1}))
	assert.NoError(t, publisher.Close())
}

func TestPublishAsync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := brokerMocks.NewMockPublisher(ctrl)
	done := make(chan struct{})

	publisher.EXPECT().
		Publish(gomock.Any(), broker.EventAdminRegistered, "payload").
		DoAndReturn(func(context.Context, string, any) error {
			close(done)

			return assert.AnError
		})

	ctx, cancel := context.WithCancel(context.Background())
	broker.PublishAsync(ctx, publisher, broker.EventAdminRegistered, "payload")
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

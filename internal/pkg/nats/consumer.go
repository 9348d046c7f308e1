package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
)

// JetStreamMessageHandler processes one message; returning an error NAKs it
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer pushes messages from a durable JetStream consumer to a handler
type Consumer struct {
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	name       string
}

// NewJetStreamConsumer ensures the durable consumer exists and starts consuming
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	consumer, err := client.CreateConsumer(ctx, config)
	if err != nil {
		return nil, err
	}

	c := &Consumer{consumer: consumer, name: config.ConsumerName}
	if err := c.start(handler); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Consumer) start(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("consumer", c.name),
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumeCtx = consumeCtx
	return nil
}

// Stop stops message delivery
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}
	logger.Info("Consumer stopped", logger.String("consumer", c.name))
}

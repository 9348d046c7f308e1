package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	natspkg "github.com/piresc/roadbuddy/internal/pkg/nats"
	"github.com/piresc/roadbuddy/services/notification"
)

const storeTimeout = 10 * time.Second

// NotificationHandler stores notification events delivered by JetStream
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	natsClient     *natspkg.Client
	cfg            models.NotificationConfig
	consumers      []*natspkg.Consumer
}

func NewNotificationHandler(notificationUC notification.NotificationUC, client *natspkg.Client, cfg models.NotificationConfig) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		natsClient:     client,
		cfg:            cfg,
	}
}

// InitNATSConsumers ensures the stream and starts the durable consumer
func (h *NotificationHandler) InitNATSConsumers(ctx context.Context) error {
	if err := natspkg.EnsureNotificationStream(ctx, h.natsClient, h.cfg.StreamName); err != nil {
		return err
	}

	consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient,
		natspkg.NotificationConsumerConfig(h.cfg.StreamName, h.cfg.ConsumerName),
		h.handleNotificationCreated)
	if err != nil {
		return fmt.Errorf("failed to initialize notification consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop stops all consumers
func (h *NotificationHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

func (h *NotificationHandler) handleNotificationCreated(msg jetstream.Msg) error {
	var event models.NotificationEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		// undecodable payloads are acked and dropped
		logger.Error("Discarding undecodable notification event", logger.String("subject", msg.Subject()), logger.Err(err))
		return nil
	}
	return h.store(&event)
}

func (h *NotificationHandler) store(event *models.NotificationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.notificationUC.Store(ctx, event); err != nil {
		if errors.Is(err, models.ErrValidation) {
			logger.Error("Discarding invalid notification event", logger.String("notification_id", event.ID), logger.Err(err))
			return nil
		}
		return err
	}

	logger.Debug("Notification stored",
		logger.String("notification_id", event.ID),
		logger.UserID(event.RecipientID),
		logger.RideID(event.RideID))
	return nil
}

package handler

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
	natspkg "github.com/piresc/roadbuddy/internal/pkg/nats"
	"github.com/piresc/roadbuddy/services/notification"
	httpHandler "github.com/piresc/roadbuddy/services/notification/handler/http"
	natsHandler "github.com/piresc/roadbuddy/services/notification/handler/nats"
)

// Handler combines all handlers for the notifications service
type Handler struct {
	notificationsHTTP *httpHandler.NotificationsHandler
	notificationsNATS *natsHandler.NotificationHandler
	cfg               *models.Config
}

func NewHandler(notificationUC notification.NotificationUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		notificationsHTTP: httpHandler.NewNotificationsHandler(notificationUC),
		notificationsNATS: natsHandler.NewNotificationHandler(notificationUC, natsClient, cfg.Notification),
		cfg:               cfg,
	}
}

// InitNATSConsumers starts the JetStream consumers
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.notificationsNATS.InitNATSConsumers(ctx)
}

// StopNATSConsumers stops the JetStream consumers
func (h *Handler) StopNATSConsumers() {
	h.notificationsNATS.Stop()
}

package gateway

import (
	"context"
	"errors"

	"github.com/piresc/roadbuddy/internal/pkg/constants"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	natspkg "github.com/piresc/roadbuddy/internal/pkg/nats"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/services/notification"
)

// publisher is the part of the NATS client the gateway needs
type publisher interface {
	PublishJSON(ctx context.Context, subject string, v interface{}, msgID string) error
}

// JetStreamGW publishes notification events on JetStream
type JetStreamGW struct {
	client  publisher
	subject string
}

// NewJetStreamGW publishes on constants.SubjectNotificationCreated
func NewJetStreamGW(client *natspkg.Client) (notification.EventGW, error) {
	if client == nil {
		return nil, errors.New("nats client is required")
	}
	return &JetStreamGW{client: client, subject: constants.SubjectNotificationCreated}, nil
}

// PublishEvent uses the event id as the message id so a republished event
// is dropped by the stream
func (g *JetStreamGW) PublishEvent(ctx context.Context, event *models.NotificationEvent) error {
	return nrpkg.WithExternalSegment(ctx, "NATS", "Publish", g.subject, func() error {
		return g.client.PublishJSON(ctx, g.subject, event, event.ID)
	})
}

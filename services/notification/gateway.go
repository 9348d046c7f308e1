package notification

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// EventGW carries notification events to the notifications service
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/roadbuddy/services/notification EventGW
type EventGW interface {
	PublishEvent(ctx context.Context, event *models.NotificationEvent) error
}

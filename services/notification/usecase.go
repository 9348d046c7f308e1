package notification

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// NotificationUC stores delivered events and serves the polling API
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roadbuddy/services/notification NotificationUC
type NotificationUC interface {
	Store(ctx context.Context, event *models.NotificationEvent) error
	// List returns the user's notifications, newest first, and marks them read
	List(ctx context.Context, userID string) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID string) (*models.UnreadCount, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

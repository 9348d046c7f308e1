package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// NotificationRepo stores notifications
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roadbuddy/services/notification NotificationRepo,UnreadCounter
type NotificationRepo interface {
	// Insert stores n unless its id is already stored; it reports whether a
	// row was written
	Insert(ctx context.Context, n *models.Notification) (bool, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	// MarkRead reports whether the notification was unread before the call
	MarkRead(ctx context.Context, id uuid.UUID, recipientID string) (bool, error)
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}

// UnreadCounter is a fast per-user unread count for polling clients
type UnreadCounter interface {
	Incr(ctx context.Context, userID string) error
	Decr(ctx context.Context, userID string) error
	// Get returns false when no count is cached for the user
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
}

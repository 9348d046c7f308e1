package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/notification"
)

type notificationUC struct {
	repo    notification.NotificationRepo
	counter notification.UnreadCounter
}

// NewNotificationUC creates the notification usecase. Without a counter
// unread counts come straight from the repository.
func NewNotificationUC(repo notification.NotificationRepo, counter notification.UnreadCounter) (notification.NotificationUC, error) {
	if repo == nil {
		return nil, errors.New("notification repository is required")
	}
	return &notificationUC{repo: repo, counter: counter}, nil
}

// Store keeps the event once; redelivered events are accepted silently
func (uc *notificationUC) Store(ctx context.Context, event *models.NotificationEvent) error {
	if event == nil || strings.TrimSpace(event.RecipientID) == "" {
		return fmt.Errorf("%w: notification recipient is required", models.ErrValidation)
	}
	id, err := uuid.Parse(event.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid notification id %q", models.ErrValidation, event.ID)
	}

	n := &models.Notification{
		ID:          id,
		RecipientID: event.RecipientID,
		RideID:      event.RideID,
		Message:     event.Message,
		CreatedAt:   event.CreatedAt,
	}
	inserted, err := uc.repo.Insert(ctx, n)
	if err != nil {
		return err
	}
	if !inserted {
		logger.Debug("Duplicate notification ignored", logger.String("notification_id", event.ID))
		return nil
	}

	if uc.counter != nil {
		if err := uc.counter.Incr(ctx, event.RecipientID); err != nil {
			logger.Warn("Failed to bump unread count", logger.UserID(event.RecipientID), logger.Err(err))
		}
	}
	return nil
}

func (uc *notificationUC) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	list, err := uc.repo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}
	if uc.counter != nil {
		if err := uc.counter.Set(ctx, userID, 0); err != nil {
			logger.Warn("Failed to reset unread count", logger.UserID(userID), logger.Err(err))
		}
	}
	return list, nil
}

// UnreadCount reads the cached count and falls back to counting rows
func (uc *notificationUC) UnreadCount(ctx context.Context, userID string) (*models.UnreadCount, error) {
	if uc.counter != nil {
		n, ok, err := uc.counter.Get(ctx, userID)
		if err == nil && ok {
			return &models.UnreadCount{UserID: userID, Count: n}, nil
		}
		if err != nil {
			logger.Warn("Unread counter unavailable, counting rows", logger.UserID(userID), logger.Err(err))
		}
	}

	n, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	if uc.counter != nil {
		if err := uc.counter.Set(ctx, userID, n); err != nil {
			logger.Warn("Failed to cache unread count", logger.UserID(userID), logger.Err(err))
		}
	}
	return &models.UnreadCount{UserID: userID, Count: n}, nil
}

func (uc *notificationUC) MarkRead(ctx context.Context, userID, notificationID string) error {
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("%w: %s", models.ErrNotificationNotFound, notificationID)
	}

	changed, err := uc.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if changed && uc.counter != nil {
		if err := uc.counter.Decr(ctx, userID); err != nil {
			logger.Warn("Failed to lower unread count", logger.UserID(userID), logger.Err(err))
		}
	}
	return nil
}

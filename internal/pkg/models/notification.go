package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a stored message for a user. Only Read ever changes.
type Notification struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RecipientID string    `json:"recipient_id" db:"recipient_id"`
	RideID      string    `json:"ride_id" db:"ride_id"`
	Message     string    `json:"message" db:"message"`
	Read        bool      `json:"read" db:"read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NotificationEvent is published on the event stream for each lifecycle change
type NotificationEvent struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	RideID      string    `json:"ride_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// UnreadCount is the polling response for a user's badge count
type UnreadCount struct {
	UserID string `json:"user_id"`
	Count  int64  `json:"count"`
}

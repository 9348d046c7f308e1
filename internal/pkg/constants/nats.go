package constants

// NATS Subjects
const (
	// Notification events
	SubjectNotificationCreated = "notification.created"
)

// JetStream streams and consumers
const (
	StreamNotifications = "NOTIFICATION_STREAM"

	ConsumerNotificationStore = "notification_created_notifications"
)

package constants

// Redis key formats
const (
	// Chat rooms
	KeyChatRoom         = "ride:chat:%s"              // Format: ride:chat:{ride_id}
	KeyChatParticipants = "ride:chat:%s:participants" // Format: ride:chat:{ride_id}:participants
	KeyUserChats        = "user:chats:%s"             // Format: user:chats:{user_id}

	// Notifications
	KeyUnreadNotifications = "user:notifications:unread:%s" // Format: user:notifications:unread:{user_id}
)

// Redis hash fields
const (
	FieldRideID        = "ride_id"
	FieldOwnerID       = "owner_id"
	FieldOrigin        = "origin"
	FieldDestination   = "destination"
	FieldDate          = "date"
	FieldDepartureTime = "departure_time"
	FieldCreatedAt     = "created_at"
)

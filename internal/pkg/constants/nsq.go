package constants

// NSQ topics
const (
	// Push notifications, consumed by the delivery service downstream
	TopicPushNotifications = "push.notifications"
)

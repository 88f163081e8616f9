package domain

type NotificationRepository interface {
	CreateNotification(notification *Notification) error
	GetNotificationsByUserID(userID string) ([]*Notification, error)
	MarkNotificationRead(notificationID string) error
	MarkAllNotificationsRead(userID string) error
}

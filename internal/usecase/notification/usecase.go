package notification

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
)

type NotificationUsecase interface {
	GetNotificationsByUserID(userID string) ([]*domain.Notification, error)
	MarkNotificationRead(notificationID string) error
	MarkAllNotificationsRead(userID string) error
}

type DefaultNotificationUsecase struct {
	NotificationRepo domain.NotificationRepository
}

func NewDefaultNotificationUsecase(notificationRepo domain.NotificationRepository) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{NotificationRepo: notificationRepo}
}

func (uc *DefaultNotificationUsecase) GetNotificationsByUserID(userID string) ([]*domain.Notification, error) {
	return uc.NotificationRepo.GetNotificationsByUserID(userID)
}

func (uc *DefaultNotificationUsecase) MarkNotificationRead(notificationID string) error {
	return uc.NotificationRepo.MarkNotificationRead(notificationID)
}

func (uc *DefaultNotificationUsecase) MarkAllNotificationsRead(userID string) error {
	return uc.NotificationRepo.MarkAllNotificationsRead(userID)
}

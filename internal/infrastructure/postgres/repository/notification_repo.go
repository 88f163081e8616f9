package repository

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/mappers"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(notification *domain.Notification) error {
	notificationModel := mappers.ToGORMNotification(notification)
	return r.DB.Create(notificationModel).Error
}

func (r *DefaultNotificationRepository) GetNotificationsByUserID(userID string) ([]*domain.Notification, error) {
	var notificationModels []models.NotificationModel
	if err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, len(notificationModels))
	for i, notificationModel := range notificationModels {
		notifications[i] = mappers.ToDomainNotification(&notificationModel)
	}

	return notifications, nil
}

func (r *DefaultNotificationRepository) MarkNotificationRead(notificationID string) error {
	return r.DB.Model(&models.NotificationModel{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}

func (r *DefaultNotificationRepository) MarkAllNotificationsRead(userID string) error {
	return r.DB.Model(&models.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

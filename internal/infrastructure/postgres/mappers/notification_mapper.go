package mappers

import (
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/postgres/models"
)

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID: model.ID,
		UserID: model.UserID,
		Title: model.Title,
		Body: model.Body,
		Read: model.Read,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMNotification(notification *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID: notification.ID,
		UserID: notification.UserID,
		Title: notification.Title,
		Body: notification.Body,
		Read: notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

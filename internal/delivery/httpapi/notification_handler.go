package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiamaikocoders/wya-payment-service/internal/delivery/httpapi/dto/response"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/notification"
)

type NotificationHandler struct {
	notificationUsecase notification.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase notification.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.Param("userId")

	notifications, err := h.notificationUsecase.GetNotificationsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]response.Notification, len(notifications))
	for i, n := range notifications {
		out[i] = response.Notification{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")

	if err := h.notificationUsecase.MarkNotificationRead(notificationID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.notificationUsecase.MarkAllNotificationsRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

package setup

import (
	"fmt"

	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/notification"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/payment"
	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/ticket"
)

type UseCases struct {
	PaymentUsecase      payment.PaymentUsecase
	TicketUsecase       ticket.TicketUsecase
	NotificationUsecase notification.NotificationUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	ticketUsecase, err := ticket.NewDefaultTicketUsecase(
		deps.Repositories.TicketRepo,
		deps.Repositories.EventRepo,
	)
	if err != nil {
		return nil, fmt.Errorf("ticket usecase: %w", err)
	}

	paymentUsecase := payment.NewDefaultPaymentUsecase(
		deps.Repositories.TransactionRepo,
		deps.Repositories.TicketRepo,
		deps.Repositories.EventRepo,
		deps.Repositories.NotificationRepo,
		deps.Gateway,
		deps.PaymentPublisher,
		deps.PaymentMetrics,
		deps.Config.Daraja.PendingExpiry,
	)

	notificationUsecase := notification.NewDefaultNotificationUsecase(deps.Repositories.NotificationRepo)

	return &UseCases{
		PaymentUsecase:      paymentUsecase,
		TicketUsecase:       ticketUsecase,
		NotificationUsecase: notificationUsecase,
	}, nil
}

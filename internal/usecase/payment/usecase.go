package payment

import (
	"context"
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
	"github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/metrics"
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error)
	HandleCallback(ctx context.Context, callback *paymentdto.STKCallback) error
	GetPaymentStatus(checkoutRequestID string) (*paymentdto.PaymentStatusOutput, error)
	ExpireStalePayments(ctx context.Context) error
}

// PaymentPublisher is the slice of the kafka publisher this usecase needs.
type PaymentPublisher interface {
	PublishPayment(event kafka.PaymentEvent) error
}

type DefaultPaymentUsecase struct {
	TransactionRepo  domain.TransactionRepository
	TicketRepo       domain.TicketRepository
	EventRepo        domain.EventRepository
	NotificationRepo domain.NotificationRepository
	Gateway          domain.PaymentGateway
	Publisher        PaymentPublisher
	Metrics          *metrics.PaymentMetrics

	// PendingExpiry is how long a transaction may wait for a gateway
	// callback before the expiry worker fails it.
	PendingExpiry time.Duration
}

func NewDefaultPaymentUsecase(
	transactionRepo domain.TransactionRepository,
	ticketRepo domain.TicketRepository,
	eventRepo domain.EventRepository,
	notificationRepo domain.NotificationRepository,
	gateway domain.PaymentGateway,
	paymentPublisher PaymentPublisher,
	paymentMetrics *metrics.PaymentMetrics,
	pendingExpiry time.Duration) *DefaultPaymentUsecase {

	if pendingExpiry == 0 {
		pendingExpiry = 5 * time.Minute
	}

	return &DefaultPaymentUsecase{
		TransactionRepo:  transactionRepo,
		TicketRepo:       ticketRepo,
		EventRepo:        eventRepo,
		NotificationRepo: notificationRepo,
		Gateway:          gateway,
		Publisher:        paymentPublisher,
		Metrics:          paymentMetrics,
		PendingExpiry:    pendingExpiry,
	}
}

package background

import (
	"context"
	"log"
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/usecase/payment"
)

type BackgroundTasks struct {
	PaymentUsecase payment.PaymentUsecase
}

func NewBackgroundTasks(paymentUC payment.PaymentUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		PaymentUsecase: paymentUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startStalePaymentExpiry(ctx)
}

func (bt *BackgroundTasks) startStalePaymentExpiry(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.PaymentUsecase.ExpireStalePayments(ctx); err != nil {
				log.Printf("Stale payment expiry error: %v\n", err)
			}
		}
	}
}

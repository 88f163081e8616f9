package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	publisher "github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
)

const expiredReason = "Payment request timed out"

// ExpireStalePayments fails pending transactions whose callback never
// arrived and cancels their tickets. Runs periodically from a background
// task.
func (uc *DefaultPaymentUsecase) ExpireStalePayments(ctx context.Context) error {
	stale, err := uc.TransactionRepo.FindStalePending(time.Now().Add(-uc.PendingExpiry))
	if err != nil {
		return fmt.Errorf("failed to find stale payments: %w", err)
	}

	for _, transaction := range stale {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		finalization := &domain.PaymentFinalization{
			CheckoutRequestID: transaction.CheckoutRequestID,
			NewStatus:         domain.TxStatusFailed,
			FailureReason:     expiredReason,
			TicketStatus:      domain.TicketStatusCancelled,
		}
		finalization.Notification = uc.buildOutcomeNotification(transaction, finalization)

		if err := uc.TransactionRepo.FinalizePayment(finalization); err != nil {
			if errors.Is(err, domain.ErrAlreadyProcessed) {
				continue
			}
			slog.Error("failed to expire payment",
				"checkout_request_id", transaction.CheckoutRequestID, "error", err.Error())
			continue
		}

		uc.Metrics.RecordPaymentFailed("timeout")

		go func(event publisher.PaymentEvent) {
			if err := uc.Publisher.PublishPayment(event); err != nil {
				slog.Error("failed to publish PaymentEvent", "stage", "expiry", "error", err.Error())
			}
		}(publisher.PaymentEvent{
			TransactionID:     transaction.ID,
			CheckoutRequestID: transaction.CheckoutRequestID,
			ReferenceCode:     transaction.ReferenceCode,
			Status:            string(domain.TxStatusFailed),
			Amount:            transaction.Amount,
			PhoneNumber:       transaction.PhoneNumber,
			FailureReason:     expiredReason,
		})
	}

	return nil
}

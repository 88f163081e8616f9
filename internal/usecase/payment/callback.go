package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	publisher "github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
)

// callbackMetadata is the subset of CallbackMetadata items a successful
// result carries.
type callbackMetadata struct {
	Amount          float64
	ReceiptNumber   string
	TransactionDate string
	PhoneNumber     string
}

func extractMetadata(items []paymentdto.CallbackItem) callbackMetadata {
	var meta callbackMetadata
	for _, item := range items {
		switch item.Name {
		case "Amount":
			if v, ok := item.Value.(float64); ok {
				meta.Amount = v
			}
		case "MpesaReceiptNumber":
			if v, ok := item.Value.(string); ok {
				meta.ReceiptNumber = v
			}
		case "TransactionDate":
			switch v := item.Value.(type) {
			case float64:
				meta.TransactionDate = strconv.FormatInt(int64(v), 10)
			case string:
				meta.TransactionDate = v
			}
		case "PhoneNumber":
			switch v := item.Value.(type) {
			case float64:
				meta.PhoneNumber = strconv.FormatInt(int64(v), 10)
			case string:
				meta.PhoneNumber = v
			}
		}
	}
	return meta
}

// HandleCallback settles a pending transaction from the gateway result.
// The transaction update, ticket update and user notification are applied
// atomically; a callback for an already-terminal transaction is a no-op.
func (uc *DefaultPaymentUsecase) HandleCallback(ctx context.Context, callback *paymentdto.STKCallback) error {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordCallbackDuration(time.Since(start).Seconds())
	}()

	transaction, err := uc.TransactionRepo.GetTransactionByCheckoutRequestID(callback.CheckoutRequestID)
	if err != nil {
		uc.Metrics.RecordError("callback_lookup")
		return fmt.Errorf("failed to match callback %s: %w", callback.CheckoutRequestID, err)
	}

	rawCallback, err := json.Marshal(callback)
	if err != nil {
		return err
	}

	finalization := &domain.PaymentFinalization{
		CheckoutRequestID: callback.CheckoutRequestID,
		RawCallback:       string(rawCallback),
	}

	var meta callbackMetadata
	if callback.ResultCode == 0 {
		meta = extractMetadata(callback.CallbackMetadata.Item)
		finalization.NewStatus = domain.TxStatusCompleted
		finalization.MpesaReceiptNumber = meta.ReceiptNumber
		finalization.TransactionDate = meta.TransactionDate
		finalization.TicketStatus = domain.TicketStatusConfirmed
		finalization.PaymentID = meta.ReceiptNumber
	} else {
		finalization.NewStatus = domain.TxStatusFailed
		finalization.FailureReason = callback.ResultDesc
		finalization.TicketStatus = domain.TicketStatusCancelled
	}

	finalization.Notification = uc.buildOutcomeNotification(transaction, finalization)

	if err := uc.TransactionRepo.FinalizePayment(finalization); err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			uc.Metrics.RecordDuplicateCallback()
			slog.Info("duplicate callback ignored",
				"checkout_request_id", callback.CheckoutRequestID,
				"status", string(transaction.Status))
			return nil
		}
		uc.Metrics.RecordError("finalize_payment")
		return fmt.Errorf("failed to finalize payment: %w", err)
	}

	event := publisher.PaymentEvent{
		TransactionID:     transaction.ID,
		CheckoutRequestID: transaction.CheckoutRequestID,
		ReferenceCode:     transaction.ReferenceCode,
		Status:            string(finalization.NewStatus),
		Amount:            transaction.Amount,
		PhoneNumber:       transaction.PhoneNumber,
	}
	if callback.ResultCode == 0 {
		uc.Metrics.RecordPaymentCompleted(transaction.Amount)
		event.ReceiptNumber = meta.ReceiptNumber
	} else {
		uc.Metrics.RecordPaymentFailed(strconv.Itoa(callback.ResultCode))
		event.FailureReason = callback.ResultDesc
	}

	go func(event publisher.PaymentEvent) {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish PaymentEvent", "stage", "callback", "error", err.Error())
		}
	}(event)

	return nil
}

// buildOutcomeNotification resolves the ticket and event behind the
// transaction to compose the user-facing message. A missing ticket is not
// fatal: the transaction still settles, just without a notification.
func (uc *DefaultPaymentUsecase) buildOutcomeNotification(transaction *domain.Transaction, finalization *domain.PaymentFinalization) *domain.Notification {
	ticket, err := uc.TicketRepo.GetTicketByReferenceCode(transaction.ReferenceCode)
	if err != nil {
		slog.Warn("no ticket for settled transaction",
			"reference_code", transaction.ReferenceCode, "error", err.Error())
		return nil
	}

	eventTitle := "your event"
	if event, err := uc.EventRepo.GetEventByID(ticket.EventID); err == nil {
		eventTitle = event.Title
	}

	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    ticket.UserID,
		CreatedAt: time.Now(),
	}
	if finalization.NewStatus == domain.TxStatusCompleted {
		notification.Title = "Payment confirmed"
		notification.Body = fmt.Sprintf("Your payment of KES %.0f for %s was received. Receipt %s.",
			transaction.Amount, eventTitle, finalization.MpesaReceiptNumber)
	} else {
		notification.Title = "Payment failed"
		notification.Body = fmt.Sprintf("Your payment for %s could not be completed: %s",
			eventTitle, finalization.FailureReason)
	}

	return notification
}

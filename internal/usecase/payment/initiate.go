package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kiamaikocoders/wya-payment-service/internal/domain"
	publisher "github.com/kiamaikocoders/wya-payment-service/internal/infrastructure/kafka"
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
)

var ErrMissingFields = errors.New("phoneNumber, amount and referenceCode are required")

const defaultDescription = "WYA ticket purchase"

// InitiatePayment pushes a payment prompt to the user's phone and records
// the attempt as a pending transaction keyed by the gateway correlation
// identifiers. The gateway result arrives later through HandleCallback.
func (uc *DefaultPaymentUsecase) InitiatePayment(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error) {
	if input.PhoneNumber == "" || input.Amount <= 0 || input.ReferenceCode == "" {
		return nil, ErrMissingFields
	}

	phone, err := NormalizePhoneNumber(input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = defaultDescription
	}

	start := time.Now()
	pushResponse, err := uc.Gateway.RequestSTKPush(ctx, &domain.STKPushRequest{
		PhoneNumber:      phone,
		Amount:           input.Amount,
		AccountReference: input.ReferenceCode,
		Description:      description,
	})
	uc.Metrics.RecordStkPushDuration(time.Since(start).Seconds())
	if err != nil {
		uc.Metrics.RecordError("stk_push")
		return nil, fmt.Errorf("failed to submit stk push: %w", err)
	}

	transaction := &domain.Transaction{
		ID:                uuid.NewString(),
		MerchantRequestID: pushResponse.MerchantRequestID,
		CheckoutRequestID: pushResponse.CheckoutRequestID,
		PhoneNumber:       phone,
		Amount:            input.Amount,
		ReferenceCode:     input.ReferenceCode,
		Description:       description,
		Status:            domain.TxStatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := uc.TransactionRepo.CreateTransaction(transaction); err != nil {
		uc.Metrics.RecordError("persist_transaction")
		return nil, fmt.Errorf("failed to record pending transaction: %w", err)
	}

	uc.Metrics.RecordPaymentInitiated(input.Amount)

	go func(event publisher.PaymentEvent) {
		if err := uc.Publisher.PublishPayment(event); err != nil {
			slog.Error("failed to publish PaymentEvent", "stage", "initiate", "error", err.Error())
		}
	}(publisher.PaymentEvent{
		TransactionID:     transaction.ID,
		CheckoutRequestID: transaction.CheckoutRequestID,
		ReferenceCode:     transaction.ReferenceCode,
		Status:            string(domain.TxStatusPending),
		Amount:            transaction.Amount,
		PhoneNumber:       transaction.PhoneNumber,
	})

	return &paymentdto.InitiatePaymentOutput{
		TransactionID:     transaction.ID,
		CheckoutRequestID: pushResponse.CheckoutRequestID,
		MerchantRequestID: pushResponse.MerchantRequestID,
		CustomerMessage:   pushResponse.CustomerMessage,
	}, nil
}

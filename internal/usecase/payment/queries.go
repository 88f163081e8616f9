package payment

import (
	paymentdto "github.com/kiamaikocoders/wya-payment-service/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetPaymentStatus(checkoutRequestID string) (*paymentdto.PaymentStatusOutput, error) {
	transaction, err := uc.TransactionRepo.GetTransactionByCheckoutRequestID(checkoutRequestID)
	if err != nil {
		return nil, err
	}

	return &paymentdto.PaymentStatusOutput{Transaction: *transaction}, nil
}

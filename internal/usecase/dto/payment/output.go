package paymentdto

import "github.com/kiamaikocoders/wya-payment-service/internal/domain"

type InitiatePaymentOutput struct {
	TransactionID     string
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
}

type PaymentStatusOutput struct {
	Transaction domain.Transaction
}

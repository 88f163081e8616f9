package domain

import "context"

type STKPushRequest struct {
	PhoneNumber      string
	Amount           float64
	AccountReference string
	Description      string
}

type STKPushResponse struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseDescription string
	CustomerMessage     string
}

// PaymentGateway is the port to the M-Pesa Daraja API.
type PaymentGateway interface {
	RequestSTKPush(ctx context.Context, req *STKPushRequest) (*STKPushResponse, error)
}

package response

type Payment struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    *PaymentData `json:"data,omitempty"`
}

type PaymentData struct {
	CheckoutRequestID string `json:"checkoutRequestId"`
	MerchantRequestID string `json:"merchantRequestId"`
	CustomerMessage   string `json:"customerMessage,omitempty"`
}

type Callback struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type PaymentStatus struct {
	CheckoutRequestID string  `json:"checkoutRequestId"`
	ReferenceCode     string  `json:"referenceCode"`
	Status            string  `json:"status"`
	Amount            float64 `json:"amount"`
	ReceiptNumber     string  `json:"receiptNumber,omitempty"`
	FailureReason     string  `json:"failureReason,omitempty"`
}

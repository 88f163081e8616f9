package kafka

// PaymentEvent is published on every payment lifecycle change so the
// notifications and analytics consumers can react without polling.
type PaymentEvent struct {
	TransactionID 	  string  `json:"transaction_id"`
	CheckoutRequestID string  `json:"checkout_request_id"`
	ReferenceCode 	  string  `json:"reference_code"`
	Status 			  string  `json:"status"`
	Amount 			  float64 `json:"amount"`
	PhoneNumber 	  string  `json:"phone_number"`
	ReceiptNumber 	  string  `json:"receipt_number,omitempty"`
	FailureReason 	  string  `json:"failure_reason,omitempty"`
}

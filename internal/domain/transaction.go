package domain

import "time"

type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusCompleted TransactionStatus = "completed"
	TxStatusFailed    TransactionStatus = "failed"
)

// Terminal reports whether the transaction has reached a final status.
// A terminal transaction is never mutated again.
func (s TransactionStatus) Terminal() bool {
	return s == TxStatusCompleted || s == TxStatusFailed
}

// Transaction is one STK push attempt. It is created pending by the
// initiator and moved to exactly one terminal status by the gateway
// callback or the expiry worker.
type Transaction struct {
	ID                 string
	MerchantRequestID  string
	CheckoutRequestID  string
	PhoneNumber        string
	Amount             float64
	ReferenceCode      string
	Description        string
	Status             TransactionStatus
	MpesaReceiptNumber string
	TransactionDate    string
	FailureReason      string
	RawCallback        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

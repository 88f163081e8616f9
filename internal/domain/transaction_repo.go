package domain

import "time"

// PaymentFinalization describes the single atomic write that moves a
// pending transaction to a terminal status: the transaction update, the
// ticket update and the user notification are applied in one database
// transaction, or not at all.
type PaymentFinalization struct {
	CheckoutRequestID  string
	NewStatus          TransactionStatus
	MpesaReceiptNumber string
	TransactionDate    string
	FailureReason      string
	RawCallback        string
	TicketStatus       TicketStatus
	PaymentID          string
	Notification       *Notification
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	GetTransactionByCheckoutRequestID(checkoutRequestID string) (*Transaction, error)

	// FinalizePayment returns ErrAlreadyProcessed when the transaction is
	// already terminal, which callers treat as a successful no-op.
	FinalizePayment(f *PaymentFinalization) error

	FindStalePending(before time.Time) ([]*Transaction, error)
}

package domain

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrAlreadyProcessed    = errors.New("transaction already in terminal status")
	ErrDuplicateReference  = errors.New("reference code already used")
	ErrSTKPushFailed       = errors.New("stk push request failed")
)

package domain

import "time"

type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Ticket links a user to an event. ReferenceCode ties the ticket to its
// payment transaction by value. PaymentID is the M-Pesa receipt number
// once the ticket is confirmed.
type Ticket struct {
	ID            string
	UserID        string
	EventID       string
	ReferenceCode string
	Status        TicketStatus
	PaymentID     string
	Amount        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

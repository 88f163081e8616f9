package ticketdto

import "github.com/kiamaikocoders/wya-payment-service/internal/domain"

type TicketOutput struct {
	Ticket     domain.Ticket
	EventTitle string
}

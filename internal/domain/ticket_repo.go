package domain

type TicketRepository interface {
	CreateTicket(ticket *Ticket) error
	GetTicketByReferenceCode(referenceCode string) (*Ticket, error)
}

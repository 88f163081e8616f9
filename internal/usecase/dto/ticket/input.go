package ticketdto

type CreateTicketInput struct {
	UserID  string
	EventID string
}

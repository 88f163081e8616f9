package request

type CreateTicket struct {
	UserID  string `json:"userId"`
	EventID string `json:"eventId"`
}

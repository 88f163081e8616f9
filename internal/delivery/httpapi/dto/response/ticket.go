package response

type Ticket struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	EventID       string  `json:"eventId"`
	EventTitle    string  `json:"eventTitle,omitempty"`
	ReferenceCode string  `json:"referenceCode"`
	Status        string  `json:"status"`
	PaymentID     string  `json:"paymentId,omitempty"`
	Amount        float64 `json:"amount"`
}

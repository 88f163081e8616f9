package paymentdto

type InitiatePaymentInput struct {
	PhoneNumber   string
	Amount        float64
	ReferenceCode string
	Description   string
}

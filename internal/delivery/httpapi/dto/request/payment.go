package request

type InitiatePayment struct {
	PhoneNumber   string  `json:"phoneNumber"`
	Amount        float64 `json:"amount"`
	ReferenceCode string  `json:"referenceCode"`
	Description   string  `json:"description"`
}

package models

// PaymentShare is one component of the monthly housing payment
type PaymentShare struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share"` // Amount / total monthly payment
}

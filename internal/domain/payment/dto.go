package payment

import "time"

type CreatePaymentRequest struct {
	Amount         float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate    time.Time `json:"payment_date" binding:"required"`
	Reference      string    `json:"reference"`
	ProofOfPayment string    `json:"proof_of_payment"`
}

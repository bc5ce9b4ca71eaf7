package payment

import "time"

// Payment is one ledger entry against a seller. Payments are
// immutable: there is no update or delete path anywhere in the
// system.
type Payment struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID       string    `gorm:"column:seller_id;index" json:"seller_id"`
	Amount         float64   `gorm:"column:amount" json:"amount"`
	PaymentDate    time.Time `gorm:"column:payment_date" json:"payment_date"`
	Reference      string    `gorm:"column:reference" json:"reference,omitempty"`
	ProofOfPayment string    `gorm:"column:proof_of_payment" json:"proof_of_payment,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }

package invoice

import "time"

// Invoice is derived from a payment. A payment may carry any number
// of invoices; each generation mints a fresh row with its own number.
type Invoice struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	PaymentID     string    `gorm:"column:payment_id;index" json:"payment_id"`
	InvoiceNumber string    `gorm:"column:invoice_number;uniqueIndex" json:"invoice_number"`
	PDFURL        string    `gorm:"column:pdf_url" json:"pdf_url,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Invoice) TableName() string { return "invoices" }

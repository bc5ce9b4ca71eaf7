package note

import "time"

// InternalNote is operator-facing free text attached to a seller.
// Append-only.
type InternalNote struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID      string    `gorm:"column:seller_id;index" json:"seller_id"`
	Content       string    `gorm:"column:content;type:text" json:"content"`
	AttachmentURL string    `gorm:"column:attachment_url" json:"attachment_url,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (InternalNote) TableName() string { return "internal_notes" }

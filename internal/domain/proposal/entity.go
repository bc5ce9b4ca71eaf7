package proposal

import "time"

// Proposal is a commercial document attached to a seller, with a flag
// marking whether it may be shared outside the back office.
// Append-only.
type Proposal struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID  string    `gorm:"column:seller_id;index" json:"seller_id"`
	FileName  string    `gorm:"column:file_name" json:"file_name"`
	FileURL   string    `gorm:"column:file_url" json:"file_url"`
	Shareable bool      `gorm:"column:shareable" json:"shareable"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Proposal) TableName() string { return "proposals" }

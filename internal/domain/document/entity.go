package document

import "time"

// Document is uploaded-file metadata keyed to a seller. The file body
// lives elsewhere; we only track its name, URL and a free-text tag
// string.
type Document struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID  string    `gorm:"column:seller_id;index" json:"seller_id"`
	FileName  string    `gorm:"column:file_name" json:"file_name"`
	FileURL   string    `gorm:"column:file_url" json:"file_url"`
	Tags      string    `gorm:"column:tags" json:"tags,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Document) TableName() string { return "documents" }

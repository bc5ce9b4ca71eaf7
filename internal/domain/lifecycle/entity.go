package lifecycle

import "time"

// Entry records one marketplace/stage transition for a seller.
// Marketplace and stage are deliberately free text: the vocabulary is
// owned by the operators, not the schema. History is append-only and
// never compacted.
type Entry struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID    string    `gorm:"column:seller_id;index" json:"seller_id"`
	Marketplace string    `gorm:"column:marketplace" json:"marketplace"`
	Stage       string    `gorm:"column:stage" json:"stage"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Entry) TableName() string { return "lifecycle_entries" }

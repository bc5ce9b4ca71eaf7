package uploadlink

import "time"

// Status is derived from stored fields plus the clock, never stored.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusUsed    Status = "used"
)

// UploadLink is a single-use bearer capability granting one anonymous
// document upload for its seller within the validity window.
// Consumable iff used == false and now < expires_at; once consumed,
// used stays true forever.
type UploadLink struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	SellerID  string    `gorm:"column:seller_id;index" json:"seller_id"`
	Token     string    `gorm:"column:token;uniqueIndex" json:"token"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	Used      bool      `gorm:"column:used" json:"used"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UploadLink) TableName() string { return "upload_links" }

// StatusAt derives the display status at the given instant.
func (l *UploadLink) StatusAt(now time.Time) Status {
	if l.Used {
		return StatusUsed
	}
	if !now.Before(l.ExpiresAt) {
		return StatusExpired
	}
	return StatusActive
}

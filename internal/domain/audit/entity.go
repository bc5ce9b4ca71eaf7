package audit

import "time"

// Entry is one append-only audit trail record. Entries are written by
// operator-facing mutations and never updated or deleted.
type Entry struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	OperatorID int64     `gorm:"column:operator_id" json:"operator_id"`
	Action     string    `gorm:"column:action" json:"action"`
	EntityType string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID   string    `gorm:"column:entity_id" json:"entity_id"`
	Details    string    `gorm:"column:details;type:text" json:"details,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }

package seller

import "time"

// Seller is the principal business entity. Every other record in the
// system hangs off a seller; sellers are never deleted in-flow.
type Seller struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	BusinessName   string    `gorm:"column:business_name" json:"business_name"`
	ContactName    string    `gorm:"column:contact_name" json:"contact_name,omitempty"`
	Email          string    `gorm:"column:email" json:"email,omitempty"`
	Phone          string    `gorm:"column:phone" json:"phone,omitempty"`
	Address        string    `gorm:"column:address;type:text" json:"address,omitempty"`
	AccountManager string    `gorm:"column:account_manager" json:"account_manager,omitempty"`
	ServiceNote    string    `gorm:"column:service_note;type:text" json:"service_note,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Seller) TableName() string { return "sellers" }

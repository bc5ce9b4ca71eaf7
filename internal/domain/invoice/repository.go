package invoice

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, i *Invoice) error
	GetByID(ctx context.Context, id string) (*Invoice, error)
	ListByPaymentID(ctx context.Context, paymentID string) ([]*Invoice, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Invoice) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	var i Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&i).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	return &i, err
}

func (r *repository) ListByPaymentID(ctx context.Context, paymentID string) ([]*Invoice, error) {
	var invoices []*Invoice
	err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

package payment

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository intentionally has no Update or Delete: the ledger is
// append-only.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]*Payment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	return &p, err
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*Payment, error) {
	var payments []*Payment
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}
